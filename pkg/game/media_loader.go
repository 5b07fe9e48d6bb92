package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp" // Register BMP decoder (the legacy menu ships .bmp artwork)

	"github.com/decker502/arcademenu/pkg/menu"
)

// placeholderCell 占位图棋盘格的边长（像素）
const placeholderCell = 16

var (
	placeholderLight = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	placeholderDark  = color.RGBA{R: 32, G: 32, B: 32, A: 255}
)

// MediaLoader decodes menu artwork into ebiten images.
//
// Unlike a game resource manager it keeps no cache: every menu session loads
// its images from scratch and releases them all before a program is launched,
// so the GPU memory is handed back while the program runs.
//
// Supported formats: BMP, PNG and JPEG (via image.Decode). Artwork is always
// read from disk; only the default configuration is embedded in the binary.
//
// This implementation is NOT thread-safe; it is used from the game loop only.
type MediaLoader struct {
	live map[*ebiten.Image]string // 尚未释放的图片 -> 来源路径
}

// NewMediaLoader 创建图片加载器
func NewMediaLoader() *MediaLoader {
	return &MediaLoader{
		live: make(map[*ebiten.Image]string),
	}
}

// LoadImage opens and decodes the image at path.
//
// A missing file yields an error wrapping menu.ErrImageNotFound so the session
// can substitute a placeholder.
func (ml *MediaLoader) LoadImage(path string) (menu.Drawable, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", menu.ErrImageNotFound, path)
		}
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	ml.live[ebitenImg] = path
	log.Printf("[Media] Loaded %s (%s, %dx%d)", path, format, img.Bounds().Dx(), img.Bounds().Dy())
	return ebitenImg, nil
}

// Placeholder 生成品红/深灰棋盘格占位图
func (ml *MediaLoader) Placeholder(width, height int) menu.Drawable {
	width = max(width, 1)
	height = max(height, 1)

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/placeholderCell+y/placeholderCell)%2 == 0 {
				rgba.SetRGBA(x, y, placeholderLight)
			} else {
				rgba.SetRGBA(x, y, placeholderDark)
			}
		}
	}

	img := ebiten.NewImageFromImage(rgba)
	ml.live[img] = "placeholder"
	return img
}

// Release frees the GPU memory behind d. Releasing a drawable twice, or one
// that did not come from this loader, is a no-op.
func (ml *MediaLoader) Release(d menu.Drawable) {
	img, ok := d.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	if _, tracked := ml.live[img]; !tracked {
		return
	}
	delete(ml.live, img)
	img.Deallocate()
}

// Live 返回尚未释放的图片数量
func (ml *MediaLoader) Live() int {
	return len(ml.live)
}
