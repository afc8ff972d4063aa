package pdf_test

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"
	"unicode/utf16"

	"dispatchdesk/internal/adapters/out/pdf"
	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/manifest"
	"dispatchdesk/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *pdf.Renderer {
	t.Helper()
	r, err := pdf.NewRenderer(pdf.Config{})
	require.NoError(t, err)
	return r
}

func rows(n int) []manifest.Row {
	out := make([]manifest.Row, 0, n)
	for i := range n {
		out = append(out, manifest.Row{
			Index: i + 1,
			Record: manifest.NewPackageRecord(
				fmt.Sprintf("PKG%03d", i+1),
				"John Doe",
				"+998901234567",
				"Tashkent, Chilonzor district, block 9, house 12, apartment 45, entrance from the yard",
				kernel.ParseAmount("15000"),
				"Nomonjon",
			),
		})
	}
	return out
}

// shows reports whether text is drawn in out. Text set in the embedded
// TrueType fonts is written as UTF-16BE code units.
func shows(out []byte, text string) bool {
	var encoded []byte
	for _, u := range utf16.Encode([]rune(text)) {
		encoded = append(encoded, byte(u>>8), byte(u))
	}
	return bytes.Contains(out, encoded)
}

func pageCount(out []byte) int {
	return bytes.Count(out, []byte("/Type /Page")) - bytes.Count(out, []byte("/Type /Pages"))
}

func signature() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for x := 5; x < 35; x++ {
		img.Set(x, 10, color.Black)
	}
	return img
}

func TestRenderer_RenderManifest(t *testing.T) {
	t.Run("should render a single page manifest", func(t *testing.T) {
		out, err := newRenderer(t).RenderManifest(t.Context(), ports.ManifestDocument{
			Courier: "Nomonjon",
			Date:    "19.10.2026",
			Rows:    rows(3),
			Total:   "45 000 сум",
		})

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
		assert.True(t, shows(out, "Nomonjon"))
		assert.True(t, shows(out, "PKG003"))
		assert.Equal(t, 1, pageCount(out))
		assert.NotContains(t, string(out), "/Subtype /Image")
	})

	t.Run("should continue a long table on new pages", func(t *testing.T) {
		out, err := newRenderer(t).RenderManifest(t.Context(), ports.ManifestDocument{
			Courier: "Nomonjon",
			Rows:    rows(80),
			Total:   "1 200 000 сум",
		})

		require.NoError(t, err)
		assert.Greater(t, pageCount(out), 1)
		assert.True(t, shows(out, "PKG080"))
	})

	t.Run("should keep cyrillic text with the default fonts", func(t *testing.T) {
		out, err := newRenderer(t).RenderManifest(t.Context(), ports.ManifestDocument{
			Courier: "Nomonjon",
			Date:    "19.10.2026",
			Rows:    rows(2),
			Total:   "30 000 сум",
		})

		require.NoError(t, err)
		assert.True(t, shows(out, "Манифест — курьер: Nomonjon"))
		assert.True(t, shows(out, "Получатель"))
		assert.True(t, shows(out, "ИТОГО: 30 000 сум"))
		assert.True(t, shows(out, "Подпись курьера"))
		assert.True(t, shows(out, "Подпись принимающего"))
	})

	t.Run("should keep the title below a long header", func(t *testing.T) {
		r, err := pdf.NewRenderer(pdf.Config{HeaderText: strings.Repeat("Biz kim quyidagi imzo chekuvchilar tasdiqlaymiz. ", 40)})
		require.NoError(t, err)

		out, err := r.RenderManifest(t.Context(), ports.ManifestDocument{
			Courier: "Nomonjon",
			Rows:    rows(3),
			Total:   "45 000 сум",
		})

		require.NoError(t, err)
		assert.True(t, shows(out, "Манифест — курьер: Nomonjon"))
		assert.True(t, shows(out, "PKG003"))
	})

	t.Run("should embed captured signatures", func(t *testing.T) {
		out, err := newRenderer(t).RenderManifest(t.Context(), ports.ManifestDocument{
			Courier:           "Nomonjon",
			Rows:              rows(1),
			Total:             "15 000 сум",
			CourierSignature:  signature(),
			ReceiverSignature: signature(),
		})

		require.NoError(t, err)
		assert.Equal(t, 2, bytes.Count(out, []byte("/Subtype /Image")))
	})

	t.Run("should stop on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := newRenderer(t).RenderManifest(ctx, ports.ManifestDocument{})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewRenderer_MissingFont(t *testing.T) {
	_, err := pdf.NewRenderer(pdf.Config{FontPath: "/nonexistent/font.ttf"})

	require.Error(t, err)
}
