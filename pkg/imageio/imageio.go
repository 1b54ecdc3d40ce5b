// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package imageio converts between Go images and ndarray Arrays, and loads and saves image files.
//
// Images are represented as arrays shaped [height, width, channels], tagged
// {shapes.AxisY, shapes.AxisX, shapes.AxisChannels}.
package imageio

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/core/dtypes"
	"github.com/gomlx/multiarray/pkg/core/ndarray"
	"github.com/gomlx/multiarray/pkg/core/shapes"
	"github.com/pkg/errors"
	"github.com/x448/float16"
	"k8s.io/klog/v2"
)

// PixelType lists the element types images can be converted to and from.
type PixelType interface {
	dtypes.NumberNotComplex | float16.Float16
}

// Load reads an image file. The format is taken from the file extension.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load image from %q", path)
	}
	return img, nil
}

// Save writes img to path. The format is taken from the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrapf(err, "failed to save image to %q", path)
	}
	return nil
}

// ToArrayConfig holds the configuration returned by ToArray. Call Single or Batch to convert.
type ToArrayConfig[T PixelType] struct {
	channels    int
	maxValue    float64
	hasMaxValue bool
}

// ToArray returns a configuration to convert images to arrays of T. By default, it converts to 3 channels
// (RGB), and values are scaled to [0, 1] for float types and [0, 255] for integer types.
//
// Example:
//
//	rgba := imageio.ToArray[float32]().WithAlpha().Single(img)
func ToArray[T PixelType]() *ToArrayConfig[T] {
	return &ToArrayConfig[T]{channels: 3}
}

// WithAlpha converts to 4 channels (RGBA), with alpha not premultiplied.
func (cfg *ToArrayConfig[T]) WithAlpha() *ToArrayConfig[T] {
	cfg.channels = 4
	return cfg
}

// Gray converts to 1 channel, the luminance of the image.
func (cfg *ToArrayConfig[T]) Gray() *ToArrayConfig[T] {
	cfg.channels = 1
	return cfg
}

// MaxValue sets the value corresponding to full intensity. Default is 1.0 for float types, 255 for integers.
func (cfg *ToArrayConfig[T]) MaxValue(v float64) *ToArrayConfig[T] {
	cfg.maxValue = v
	cfg.hasMaxValue = true
	return cfg
}

func (cfg *ToArrayConfig[T]) resolvedMaxValue() float64 {
	if cfg.hasMaxValue {
		return cfg.maxValue
	}
	return defaultMaxValue[T]()
}

func defaultMaxValue[T PixelType]() float64 {
	if dtypes.FromGenericsType[T]().IsFloat() {
		return 1.0
	}
	return 255.0
}

// Single converts one image to an array shaped [height, width, channels].
func (cfg *ToArrayConfig[T]) Single(img image.Image) *ndarray.Array[T] {
	bounds := img.Bounds()
	arr := ndarray.NewWith[T](shapes.Make(bounds.Dy(), bounds.Dx(), cfg.channels),
		ndarray.WithAxisTags(shapes.AxisY, shapes.AxisX, shapes.AxisChannels))
	cfg.fill(img, arr.Flat())
	return arr
}

// Batch converts images of the same size to an array shaped [batch, height, width, channels].
func (cfg *ToArrayConfig[T]) Batch(images []image.Image) *ndarray.Array[T] {
	if len(images) == 0 {
		exceptions.Panicf("imageio.ToArray().Batch(): no images given")
	}
	bounds := images[0].Bounds()
	arr := ndarray.NewWith[T](shapes.Make(len(images), bounds.Dy(), bounds.Dx(), cfg.channels),
		ndarray.WithAxisTags(shapes.AxisUnknown, shapes.AxisY, shapes.AxisX, shapes.AxisChannels))
	flat := arr.Flat()
	imageSize := bounds.Dy() * bounds.Dx() * cfg.channels
	for ii, img := range images {
		if img.Bounds().Dx() != bounds.Dx() || img.Bounds().Dy() != bounds.Dy() {
			exceptions.Panicf("imageio.ToArray().Batch(): image #%d has size %dx%d, but image #0 has size %dx%d",
				ii, img.Bounds().Dx(), img.Bounds().Dy(), bounds.Dx(), bounds.Dy())
		}
		cfg.fill(img, flat[ii*imageSize:(ii+1)*imageSize])
	}
	return arr
}

// fill converts img into data, laid out as [height, width, channels] in row-major order.
func (cfg *ToArrayConfig[T]) fill(img image.Image, data []T) {
	if cfg.channels < 4 {
		if opaque, ok := img.(interface{ Opaque() bool }); ok && !opaque.Opaque() {
			klog.V(1).Infof("imageio: dropping alpha channel of %s image", img.Bounds().Size())
		}
	}
	isFloat16 := dtypes.FromGenericsType[T]() == dtypes.Float16
	maxValue := cfg.resolvedMaxValue()
	convert := func(val uint32) T {
		if isFloat16 {
			return T(float16.Fromfloat32(float32(float64(val) * maxValue / 0xFFFF)))
		}
		return T(float64(val) * maxValue / 0xFFFF)
	}
	bounds := img.Bounds()
	pos := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.At(x, y)
			if cfg.channels == 1 {
				gray := color.Gray16Model.Convert(c).(color.Gray16)
				data[pos] = convert(uint32(gray.Y))
				pos++
				continue
			}
			nrgba := color.NRGBA64Model.Convert(c).(color.NRGBA64)
			data[pos] = convert(uint32(nrgba.R))
			data[pos+1] = convert(uint32(nrgba.G))
			data[pos+2] = convert(uint32(nrgba.B))
			if cfg.channels == 4 {
				data[pos+3] = convert(uint32(nrgba.A))
			}
			pos += cfg.channels
		}
	}
}

// FromArray converts v to an image. maxValue is the value of full intensity; if 0, the default for T is
// used (1.0 for float types, 255 for integers). Values are clipped to [0, maxValue].
//
// v must be either 2-D (a gray image) or 3-D [height, width, channels] with 1 (gray), 3 (RGB) or 4 (RGBA)
// channels. If v has an axis tagged shapes.AxisChannels, it is used as the channel axis.
func FromArray[T PixelType](v ndarray.View[T], maxValue float64) image.Image {
	if maxValue == 0 {
		maxValue = defaultMaxValue[T]()
	}
	switch v.Rank() {
	case 2:
		v = v.NewAxis(2, shapes.AxisChannels)
	case 3:
		if v.ChannelAxis() >= 0 {
			v = v.EnsureChannelAxis(2)
		}
	default:
		exceptions.Panicf("imageio.FromArray: array of shape %s must have rank 2 or 3", v.Shape())
	}
	height, width, channels := v.Dim(0), v.Dim(1), v.Dim(2)
	isFloat16 := dtypes.FromGenericsType[T]() == dtypes.Float16
	toUint8 := func(value T) uint8 {
		var f float64
		if isFloat16 {
			f = float64(float16.Float16(value).Float32())
		} else {
			f = float64(value)
		}
		f = math.Round(255 * f / maxValue)
		return uint8(max(0, min(255, f)))
	}
	rect := image.Rect(0, 0, width, height)
	switch channels {
	case 1:
		img := image.NewGray(rect)
		for y := range height {
			for x := range width {
				img.Pix[y*img.Stride+x] = toUint8(v.At(y, x, 0))
			}
		}
		return img
	case 3, 4:
		img := image.NewNRGBA(rect)
		for y := range height {
			for x := range width {
				pos := y*img.Stride + 4*x
				for c := range 3 {
					img.Pix[pos+c] = toUint8(v.At(y, x, c))
				}
				if channels == 4 {
					img.Pix[pos+3] = toUint8(v.At(y, x, 3))
				} else {
					img.Pix[pos+3] = 255
				}
			}
		}
		return img
	default:
		exceptions.Panicf("imageio.FromArray: array of shape %s has %d channels, only 1, 3 or 4 are supported",
			v.Shape(), channels)
		panic(nil) // Quiet linter.
	}
}

// LoadArray loads an image file and converts it to an array with cfg. If cfg is nil, ToArray[T]() is used.
func LoadArray[T PixelType](path string, cfg *ToArrayConfig[T]) (*ndarray.Array[T], error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = ToArray[T]()
	}
	return cfg.Single(img), nil
}

// SaveArray converts v with FromArray and saves it to path.
func SaveArray[T PixelType](v ndarray.View[T], path string, maxValue float64) error {
	var img image.Image
	err := exceptions.TryCatch[error](func() { img = FromArray(v, maxValue) })
	if err != nil {
		return errors.WithMessagef(err, "failed to convert array to image for %q", path)
	}
	return Save(img, path)
}
