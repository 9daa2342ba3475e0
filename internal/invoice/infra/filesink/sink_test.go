package filesink

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernandojoseee/garageonline/internal/invoice/domain"
)

func TestSaveWritesAndOverwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "invoices")
	sink := New(dir)

	doc := domain.Document{
		CustomerName: "Ana",
		IssuedAt:     time.Now(),
		Filename:     "Invoice-GarageOnline-Ana.txt",
		Body:         []byte("first\n"),
	}

	path, err := sink.Save(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, doc.Filename), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("first\n"), got)

	doc.Body = []byte("second\n")
	_, err = sink.Save(context.Background(), doc)
	require.NoError(t, err)

	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second\n"), got)
}

func TestSaveRejectsEscapingFilenames(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "invoices")
	sink := New(dir)

	outside := filepath.Join(base, "evil.txt")

	for _, name := range []string{
		"../evil.txt",
		"x/../../evil.txt",
		"sub/evil.txt",
		"/etc/evil.txt",
		"",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := sink.Save(context.Background(), domain.Document{
				Filename: name,
				Body:     []byte("x"),
			})
			require.ErrorIs(t, err, ErrBadFilename)
		})
	}

	_, err := os.Stat(outside)
	assert.True(t, os.IsNotExist(err), "a rejected filename still produced a file outside the sink dir")
}

func TestSaveCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(t.TempDir()).Save(ctx, domain.Document{Filename: "x.txt"})
	assert.Error(t, err)
}
