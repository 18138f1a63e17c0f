// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"

	"cogentcore.org/glexamples/base/iox/imagex"
	"cogentcore.org/glexamples/geom"
	"cogentcore.org/glexamples/glgpu"
	"cogentcore.org/glexamples/glhost"
	"cogentcore.org/glexamples/texgen"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// imageFilters are the fragment shaders imageProcess cycles through.
var imageFilters = []string{"passthrough", "gaussian", "edge"}

// imageView shows an image at its own size, through one of a list
// of filter programs. The space key cycles the filters when there
// is more than one.
type imageView struct {
	env     *Env
	filters []string
	active  int
	img     image.Image
	name    string
	progs   []*glgpu.Program
	quad    *gpuMesh
	tex     *glgpu.Texture2D
}

func newDisplayImage(env *Env) glhost.Scene {
	return &imageView{env: env, filters: imageFilters[:1]}
}

func newImageProcess(env *Env) glhost.Scene {
	return &imageView{env: env, filters: imageFilters}
}

// loadImage opens the image file, or makes a checker pattern
// when there is none.
func loadImage(file string) (image.Image, string, error) {
	if file == "" {
		return texgen.Checker(512, 512), "checker", nil
	}
	img, f, err := imagex.Open(file)
	if err != nil {
		return nil, "", err
	}
	slog.Info("loaded image", "file", file, "format", f, "size", img.Bounds().Size())
	return img, filepath.Base(file), nil
}

// Configure loads the image and sizes the window to fit it.
func (sc *imageView) Configure(opts *glhost.Options) error {
	var err error
	sc.img, sc.name, err = loadImage(sc.env.Image)
	if err != nil {
		return err
	}
	sz := sc.img.Bounds().Size()
	opts.Width, opts.Height = sz.X, sz.Y
	return nil
}

func (sc *imageView) title(h *glhost.Host) {
	if len(sc.filters) == 1 {
		h.SetTitle(fmt.Sprintf("%s: %s", h.Options.Title, sc.name))
		return
	}
	h.SetTitle(fmt.Sprintf("%s: %s [%s] (space cycles)", h.Options.Title, sc.name, sc.filters[sc.active]))
}

func (sc *imageView) Init(h *glhost.Host) error {
	if sc.img == nil {
		if err := sc.Configure(&h.Options); err != nil {
			return err
		}
	}
	for _, f := range sc.filters {
		pr, err := sc.env.Shaders.Build(f, "image.vert", f+".frag")
		if err != nil {
			return err
		}
		sc.progs = append(sc.progs, pr)
	}
	var err error
	if sc.quad, err = uploadMesh16(geom.ImageQuad()); err != nil {
		return err
	}
	sc.tex = glgpu.NewTexture2D()
	sc.tex.SetFilter(gl.NEAREST, gl.NEAREST)
	sc.tex.SetWrap(gl.CLAMP_TO_EDGE)
	sc.tex.SetImage(imagex.TexturePixels(sc.img))
	glgpu.Draw.ClearColor(color.Transparent)
	// image.RGBA pixels are alpha premultiplied
	glgpu.Draw.Blend(glgpu.BlendAlpha)
	sc.title(h)
	return nil
}

func (sc *imageView) Key(h *glhost.Host, key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if key != glfw.KeySpace || action != glfw.Press || len(sc.filters) == 1 {
		return
	}
	sc.active = (sc.active + 1) % len(sc.filters)
	sc.title(h)
}

func (sc *imageView) Render(h *glhost.Host) error {
	glgpu.Draw.Clear(true, true)
	pr := sc.progs[sc.active]
	pr.Use()
	sc.tex.Activate(0)
	pr.SetInt("tex", 0)
	sz := sc.tex.Size()
	pr.SetVec2("texelSize", mgl32.Vec2{1 / float32(sz.X), 1 / float32(sz.Y)})
	sc.quad.draw()
	glgpu.UnbindVertexArray()
	glgpu.Unuse()
	return nil
}

func (sc *imageView) Reload(h *glhost.Host) error {
	for _, pr := range sc.progs {
		if err := sc.env.Shaders.Reload(pr); err != nil {
			return err
		}
	}
	return nil
}

func (sc *imageView) Destroy() {
	glgpu.Draw.Blend(glgpu.BlendNone)
	sc.tex.Delete()
	sc.quad.Delete()
	for _, pr := range sc.progs {
		pr.Delete()
	}
}
