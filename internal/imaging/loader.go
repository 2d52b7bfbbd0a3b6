package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

// ImageCache provides thread-safe caching of loaded images to avoid redundant disk reads.
//
// The cache stores decoded image.Image objects keyed by their file path. Once an image
// is loaded, subsequent Load() calls for the same path return the cached copy without
// disk I/O.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sample, err := imaging.SampleColor(img, 10, 20)
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or loads it from disk if not cached.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, GIF, BMP, TIFF and WebP.
//
// Returns:
//   - image.Image: The decoded image. Images without an EXIF orientation keep
//     the concrete type chosen by their decoder (e.g., *image.NRGBA,
//     *image.Gray16, *image.YCbCr), which NativeLayout reports on.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// JPEG and TIFF images carrying an EXIF orientation tag are rotated upright
// on load so sampled coordinates match what a viewer displays.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Layout describes how a decoded image stores its pixels, expressed in the
// pixel format family.
type Layout struct {
	// Format is the closest pixel format for the decoder's storage.
	Format pixel.Format `json:"pixel_format"`

	// Component is the component type name, "uint8" or "uint16".
	Component string `json:"component"`

	// Premultiplied is true when color components are stored multiplied
	// by alpha (image.RGBA, image.RGBA64).
	Premultiplied bool `json:"premultiplied"`
}

// NativeLayout reports the storage layout of a decoded image.
//
// # Mapping
//
//   - *image.Gray, *image.Gray16 -> Gray
//   - *image.Alpha, *image.Alpha16 -> GrayAlpha (white with alpha)
//   - *image.YCbCr, *image.CMYK -> RGB after decoding
//   - *image.RGBA, *image.NRGBA, *image.Paletted -> RGBA
//   - *image.RGBA64, *image.NRGBA64 -> RGBA
//   - anything else -> RGBA at 16 bits, the color.Color contract
func NativeLayout(img image.Image) Layout {
	switch img.(type) {
	case *image.Gray:
		return Layout{Format: pixel.FormatGray, Component: "uint8"}
	case *image.Gray16:
		return Layout{Format: pixel.FormatGray, Component: "uint16"}
	case *image.Alpha:
		return Layout{Format: pixel.FormatGrayAlpha, Component: "uint8"}
	case *image.Alpha16:
		return Layout{Format: pixel.FormatGrayAlpha, Component: "uint16"}
	case *image.YCbCr, *image.CMYK:
		return Layout{Format: pixel.FormatRGB, Component: "uint8"}
	case *image.NRGBA, *image.Paletted:
		return Layout{Format: pixel.FormatRGBA, Component: "uint8"}
	case *image.RGBA:
		return Layout{Format: pixel.FormatRGBA, Component: "uint8", Premultiplied: true}
	case *image.NRGBA64:
		return Layout{Format: pixel.FormatRGBA, Component: "uint16"}
	default:
		return Layout{Format: pixel.FormatRGBA, Component: "uint16", Premultiplied: true}
	}
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the file format: "png", "jpeg", "gif", "bmp", "tiff",
	// "webp", or "unknown". Detection is based on file extension.
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the native layout has an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// Layout is the native pixel layout of the decoded image.
	Layout Layout `json:"layout"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// fileFormats maps lower-case file extensions to format names.
var fileFormats = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".bmp":  "bmp",
	".tif":  "tiff",
	".tiff": "tiff",
	".webp": "webp",
}

// LoadImageInfo loads an image and returns metadata about it.
//
// Parameters:
//   - cache: The image cache to use for loading. Must not be nil.
//   - path: Path to the image file.
//
// Returns:
//   - *ImageInfo: Metadata about the image.
//   - error: Non-nil if the image cannot be loaded or the file cannot be stat'd.
//
// # Color Depth Detection
//
// Color depth follows the component type of the native layout:
// uint16 components report "16-bit", everything else "8-bit".
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format, ok := fileFormats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		format = "unknown"
	}

	layout := NativeLayout(img)
	colorDepth := "8-bit"
	if layout.Component == "uint16" {
		colorDepth = "16-bit"
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorDepth:    colorDepth,
		HasAlpha:      layout.Format.HasAlpha(),
		Layout:        layout,
		FileSizeBytes: stat.Size(),
	}, nil
}
