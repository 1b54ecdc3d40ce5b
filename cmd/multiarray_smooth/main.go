// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// multiarray_smooth smooths images with a separable Gaussian filter.
//
// Usage:
//
//	multiarray_smooth -sigma=2 -padding=reflect -out_dir=/tmp/smoothed image1.png image2.jpg ...
//
// With one -sigma value both spatial axes use the same kernel, with two values they are the sigmas for
// the Y and X axes.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/convolution"
	"github.com/gomlx/multiarray/pkg/core/ndarray"
	"github.com/gomlx/multiarray/pkg/imageio"
	"github.com/gomlx/multiarray/pkg/padding"
	"github.com/gomlx/multiarray/pkg/support/fsutil"
	"github.com/gomlx/multiarray/pkg/support/xslices"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

var (
	flagSigma = xslices.Flag("sigma", []float64{2}, "Standard deviation of the Gaussian, in pixels. "+
		"Either one value for both axes, or two comma-separated values for the Y and X axes.",
		func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	flagOrder  = flag.Int("order", 0, "Order of the Gaussian derivative, applied along both axes.")
	flagSIMD   = flag.Bool("simd", true, "Use SIMD dot products if the CPU supports them.")
	flagOutDir = flag.String("out_dir", "", "Directory where to save the smoothed images. "+
		"Created if missing, \"~\" is expanded. Defaults to the directory of each input image.")
	flagSuffix = flag.String("suffix", "_smooth", "Suffix added to the base name of the output images.")
	flagAlpha  = flag.Bool("alpha", false, "Keep (and smooth) the alpha channel.")

	flagPadding = padding.Reflect
)

func init() {
	flag.Var(&flagPadding, "padding", fmt.Sprintf("Padding of the image borders, one of %v.", padding.Modes()))
}

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 2, 0, 2).Align(lipgloss.Center)
	rowStyle       = lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	titleStyle     = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		klog.Exitf("Missing images to smooth. See 'multiarray_smooth -help'")
	}
	kernels := buildKernels(*flagSigma, *flagOrder)
	opts := convolution.DefaultOptions().WithPadding(flagPadding, flagPadding).WithSIMD(*flagSIMD)
	klog.V(1).Infof("multiarray_smooth: SIMD level %s, options %s", convolution.CurrentLevel(), opts)

	table := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerRowStyle
			}
			return rowStyle
		}).
		Headers("Input", "Output", "Size", "Pixels", "Bytes", "Elapsed")

	outDir := *flagOutDir
	if outDir != "" {
		outDir = must.M1(fsutil.EnsureDir(outDir))
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("smoothing"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.ThemeUnicode),
		progressbar.OptionClearOnFinish())
	for _, file := range files {
		outPath := fsutil.WithSuffix(file, outDir, *flagSuffix)
		start := time.Now()
		shape := must.M1(smooth(file, outPath, kernels, opts))
		elapsed := time.Since(start)
		info := must.M1(os.Stat(outPath))
		table.Row(file, outPath,
			fmt.Sprintf("%dx%d", shape[1], shape[0]),
			humanize.Comma(int64(shape[0]*shape[1])),
			humanize.Bytes(uint64(info.Size())),
			elapsed.Round(time.Millisecond).String())
		must.M(bar.Add(1))
	}
	must.M(bar.Finish())
	fmt.Println(titleStyle.Render("Smoothed images"))
	fmt.Println(table.Render())
}

// buildKernels returns the kernels for the Y and X axes.
func buildKernels(sigmas []float64, order int) []convolution.Kernel[float32] {
	switch len(sigmas) {
	case 1:
		k := convolution.Gaussian[float32](sigmas[0], order, 0)
		return []convolution.Kernel[float32]{k, k}
	case 2:
		return []convolution.Kernel[float32]{
			convolution.Gaussian[float32](sigmas[0], order, 0),
			convolution.Gaussian[float32](sigmas[1], order, 0),
		}
	default:
		klog.Exitf("-sigma takes one or two values, got %v", sigmas)
		return nil
	}
}

// smooth loads the image in inPath, filters each of its channels with kernels, and saves it to outPath.
// It returns the [height, width, channels] dimensions of the image.
func smooth(inPath, outPath string, kernels []convolution.Kernel[float32], opts *convolution.Options) ([]int, error) {
	cfg := imageio.ToArray[float32]()
	if *flagAlpha {
		cfg = cfg.WithAlpha()
	}
	img, err := imageio.LoadArray(inPath, cfg)
	if err != nil {
		return nil, err
	}
	out := ndarray.NewWith[float32](img.Shape(), ndarray.WithAxisTags(img.AxisTags().Values()...))
	err = exceptions.TryCatch[error](func() {
		if kernels[0] == kernels[1] {
			convolution.ConvolveDims(img.View, out.View, kernels[0], opts, 2)
			return
		}
		for c := range img.Dim(img.ChannelAxis()) {
			convolution.ConvolveWithKernels(img.BindChannel(c), out.BindChannel(c), kernels, opts)
		}
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "smoothing %q", inPath)
	}
	if *flagOrder > 0 {
		// Derivatives are centered at zero: shift them to mid-gray.
		ndarray.AddScalar(out.View, 0.5)
	}
	if err = imageio.SaveArray(out.View, outPath, 1.0); err != nil {
		return nil, err
	}
	return img.Shape().Dimensions(), nil
}
