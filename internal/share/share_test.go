package share

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunit-heesungyang/palette-manager/internal/model"
	"github.com/lunit-heesungyang/palette-manager/internal/storage"
)

func sampleShare(t *testing.T, opts Options) *SharedFolder {
	t.Helper()
	folder := &model.Folder{ID: "blues", Name: "Blues", Description: "ocean", Icon: "🌊"}
	a := model.NewColor("zzh Blue", "#1F91DC")
	a.ID = "zzh-blue"
	a.Description = "calm sea"
	a.Tags = []string{"blue"}
	a.UsageCount = 4
	b := model.NewColor("Coral", "#FF7F50")
	b.ID = "coral"
	return NewSharedFolder(folder, []*model.Color{a, b}, opts, "1.2.3")
}

func TestNewSharedFolder(t *testing.T) {
	sf := sampleShare(t, DefaultOptions())

	assert.Equal(t, DataVersion, sf.Version)
	assert.NotEqual(t, "blues", sf.Folder.ID, "fresh folder id")
	assert.Equal(t, "Blues", sf.Folder.Name)
	assert.Equal(t, 2, sf.Metadata.TotalColors)
	assert.Equal(t, "1.2.3", sf.Metadata.AppVersion)
	assert.Equal(t, "calm sea", sf.Colors[0].Description)
	assert.NoError(t, sf.Validate())
}

func TestNewSharedFolder_StripsOptionalFields(t *testing.T) {
	sf := sampleShare(t, Options{})

	assert.Empty(t, sf.Colors[0].Description)
	assert.Nil(t, sf.Colors[0].Tags)
	assert.Zero(t, sf.Colors[0].UsageCount)
	assert.Equal(t, "#1F91DC", sf.Colors[0].Hex)
}

func TestCodec_RoundTrip(t *testing.T) {
	sf := sampleShare(t, DefaultOptions())
	codec := NewCodec("https://palette.local/app?lang=en", 0)

	link, err := codec.URL(sf)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://palette.local/app?"))
	assert.Contains(t, link, "lang=en")
	assert.Contains(t, link, URLParam+"=")

	decoded, err := FromURL(link)
	require.NoError(t, err)
	assert.Equal(t, sf.Folder.ID, decoded.Folder.ID)
	assert.Equal(t, "Blues", decoded.Folder.Name)
	assert.Equal(t, "ocean", decoded.Folder.Description)
	require.Len(t, decoded.Colors, 2)
	assert.Equal(t, "#FF7F50", decoded.Colors[1].Hex)
	assert.Equal(t, []string{"blue"}, decoded.Colors[0].Tags)
	assert.True(t, sf.SharedAt.Equal(decoded.SharedAt))

	token, err := codec.Encode(sf)
	require.NoError(t, err)
	bare, err := FromURL("  " + token + "\n")
	require.NoError(t, err)
	assert.Equal(t, decoded.Folder.ID, bare.Folder.ID)
}

func manyColors(n int) []*model.Color {
	var colors []*model.Color
	for i := 0; i < n; i++ {
		c := model.NewColor(fmt.Sprintf("Color %d", i), fmt.Sprintf("#%06X", i*40503))
		c.Description = strings.Repeat(fmt.Sprintf("unique text %d ", i), 3)
		colors = append(colors, c)
	}
	return colors
}

func TestCodec_TooLarge(t *testing.T) {
	folder := &model.Folder{ID: "big", Name: "Big"}
	sf := NewSharedFolder(folder, manyColors(60), DefaultOptions(), "")

	_, err := NewCodec("https://palette.local/", 0).Encode(sf)
	assert.ErrorIs(t, err, ErrTooLarge)

	token, err := NewCodec("https://palette.local/", 1<<20).Encode(sf)
	require.NoError(t, err)
	decoded, err := Decode(token)
	require.NoError(t, err)
	assert.Len(t, decoded.Colors, 60)
}

func TestCodec_TokenLimitIgnoresURLLimit(t *testing.T) {
	folder := &model.Folder{ID: "huge", Name: "Huge"}
	sf := NewSharedFolder(folder, manyColors(400), DefaultOptions(), "")

	_, err := NewCodec("https://palette.local/", 1<<30).Encode(sf)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"outside alphabet", "!!!"},
		{"garbage stream", "aGVsbG8gd29ybGQ"},
		{"empty", ""},
		{"too long", strings.Repeat("A", MaxTokenLength+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromURL(tt.token)
			assert.ErrorIs(t, err, ErrInvalidData)
		})
	}
}

func TestDecode_RejectsIncompletePayload(t *testing.T) {
	sf := sampleShare(t, DefaultOptions())
	sf.Metadata = nil
	token, err := NewCodec("https://palette.local/", 0).Encode(sf)
	require.NoError(t, err)

	_, err = Decode(token)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestIsExpired(t *testing.T) {
	sf := sampleShare(t, DefaultOptions())
	sf.SharedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := sf.SharedAt.Add(5 * time.Hour)

	assert.False(t, sf.expiredAt(0, now), "zero never expires")
	assert.False(t, sf.expiredAt(6, now))
	assert.True(t, sf.expiredAt(4, now))
	assert.True(t, sf.IsExpired(1))
}

func TestInfo(t *testing.T) {
	sf := sampleShare(t, DefaultOptions())
	info := sf.Info()

	assert.Equal(t, "Blues", info.FolderName)
	assert.Equal(t, 2, info.ColorCount)
	assert.Regexp(t, `^\d+\.\d KB$`, info.DataSize)
	assert.Equal(t, sf.SharedAt.Local().Format("2006-01-02"), info.SharedDate)
}

func TestImport(t *testing.T) {
	st := storage.New(t.TempDir())
	_, err := st.CreateFolder("Blues", "", "")
	require.NoError(t, err)

	sf := sampleShare(t, DefaultOptions())
	sf.Colors[1].Favorite = true

	res, err := Import(st, sf)
	require.NoError(t, err)
	assert.True(t, res.Renamed)
	assert.Equal(t, "Blues (1)", res.Folder.Name)
	assert.Equal(t, 1, res.Added, "coral is new")
	assert.Equal(t, 1, res.Linked, "zzh blue exists in the default palette")

	p, err := st.LoadPalette()
	require.NoError(t, err)
	coral := p.FindByHex("#FF7F50")
	require.NotNil(t, coral)
	assert.False(t, coral.Favorite)

	fi, err := st.LoadFolders()
	require.NoError(t, err)
	imported := fi.Find("Blues (1)")
	require.NotNil(t, imported)
	assert.Equal(t, []string{"zzh-blue", coral.ID}, fi.ColorIDs(imported.ID))
	assert.Equal(t, "ocean", imported.Description)
}

// Token produced by the web client (LZ-string compressToEncodedURIComponent)
const webClientToken = "N4IgbgpgTgzglgewHYgFwgIwDoAMuQA0IAZggDYAm0aocFaIAthgIYBMARgMwDGALBQCshEEhaMIDAMoBXJDAgAXEVRg8ocAA6LEKdAHcWURgAIIkJHCQBzE4uQQYI9RBaKIFAILL0bHGz4AWhxBYIwAFRwATlQcHFi8OJwALREZTQo3D28GPwDg0JwI6NQueLjcONSAXyIecgRYNABtWnp0eqgWMhExCQYAYUbu3vEIZIALBkAp50AtF0AivxEJiAAPBgBiADFNgHZNwRwVR3UtHWQGI7UNbV1Ji7qs60aATwYOLqR6IkUWaydUZogQzGEQwOQKZQAXW+EEYmmgbhkUEkBiMjBEcBgmxYYEacHcaEUUBkECIMhgvwgQzkPi4dWRWS8PhAeSCODZxQAHAkEpUUmkMoycr5-Gy2WxIty4rykjUCG0GBRyQBrUb9dAAERVS1WGz4ACEuLs2CIfn8WtCQO44QjFEiUSB6uQMVicXiCahiN0FGSKdYqQgaWgcPTXO4mblRcE2VxJTyKrKBZlw8KWVH2cFYzgpeVElUQNVLTAJkZsszWQUwuEMLmZfmiBIfsmWDQrQgfmQhmRGv82EQWJpNAA1aDwc7oPDYQ5EGCBqA8B0AcQAElITF3GiYAHKrZTVapAA"

func TestDecode_WebClientToken(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bare token", webClientToken},
		// Web clients put the token in the query unescaped, so '+' reads back as ' '
		{"unescaped link", "https://colors.example/?shared=" + webClientToken},
		{"escaped link", BuildURL("https://colors.example/", webClientToken)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf, err := FromURL(tt.raw)
			require.NoError(t, err)

			assert.Equal(t, "1.0.0", sf.Version)
			assert.Equal(t, "m1a2b3c4d5", sf.Folder.ID)
			assert.Equal(t, "Sunset", sf.Folder.Name)
			assert.Equal(t, "warm evening tones", sf.Folder.Description)
			assert.True(t, sf.SharedAt.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
			assert.Equal(t, 2, sf.Metadata.TotalColors)
			assert.Equal(t, "GHS Color Next", sf.Metadata.Source)

			require.Len(t, sf.Colors, 2)
			coral := sf.Colors[0]
			assert.Equal(t, "Coral", coral.Name)
			assert.Equal(t, "珊瑚红", coral.NameZh)
			assert.Equal(t, "#FF7F50", coral.Hex)
			assert.Equal(t, []string{"warm", "sunset"}, coral.Tags)
			assert.True(t, coral.Favorite)
			assert.Equal(t, 3, coral.UsageCount)
			assert.Equal(t, "#4B3F72", sf.Colors[1].Hex)
		})
	}
}

func TestImport_SkipsInvalidHex(t *testing.T) {
	folder := &model.Folder{ID: "mixed", Name: "Mixed"}
	bad := model.NewColor("Sneaky", "javascript:alert(1)")
	good := model.NewColor("Mint", "#98FF98")
	sf := NewSharedFolder(folder, []*model.Color{bad, good}, DefaultOptions(), "")

	token, err := NewCodec("https://palette.local/", 0).Encode(sf)
	require.NoError(t, err)
	decoded, err := Decode(token)
	require.NoError(t, err)

	st := storage.New(t.TempDir())
	res, err := Import(st, decoded)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 1, res.Added)

	p, err := st.LoadPalette()
	require.NoError(t, err)
	for _, c := range p.Colors {
		assert.Regexp(t, `^#[0-9A-F]{6}$`, c.Hex, c.Name)
	}
	assert.NotNil(t, p.FindByHex("#98FF98"))

	fi, err := st.LoadFolders()
	require.NoError(t, err)
	assert.Len(t, fi.ColorIDs(res.Folder.ID), 1)
}
