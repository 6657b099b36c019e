package main

import (
	"fmt"
	"os"
	"sort"

	"polygon-renderer/internal/bmp"
	"polygon-renderer/internal/export"
	"polygon-renderer/internal/raster"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect file.bmp|file.webp|file.tga")
		os.Exit(2)
	}
	path := os.Args[1]

	if f, err := os.Open(path); err == nil {
		h, herr := bmp.ReadHeader(f)
		f.Close()
		if herr == nil {
			fmt.Printf("BMP: %dx%d, %d bpp, compression=%d\n", h.Width, h.Height, h.BitCount, h.Compression)
			fmt.Printf("  File size: %d (expected %d)\n", h.FileSize, bmp.FileSize(int(h.Width), int(h.Height)))
			fmt.Printf("  Data offset: %d, image size: %d, planes: %d\n", h.DataOffset, h.ImageSize, h.Planes)
		}
	}

	img, err := export.Load(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fb := raster.FromNRGBA(img)

	counts := map[raster.Color]int{}
	for _, c := range fb.Pix {
		counts[c]++
	}
	colors := make([]raster.Color, 0, len(counts))
	for c := range counts {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool { return counts[colors[i]] > counts[colors[j]] })

	total := len(fb.Pix)
	fmt.Printf("Pixels: %d, distinct colors: %d\n", total, len(colors))
	limit := min(len(colors), 16)
	for _, c := range colors[:limit] {
		fmt.Printf("  %s: %d (%.2f%%)\n", c, counts[c], 100*float64(counts[c])/float64(total))
	}
}
