package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveOpenRemove(t *testing.T) {
	s := NewFromFs(afero.NewMemMapFs())
	ctx := context.Background()

	p1, err := s.Save(ctx, DirMaterials, "notes.pdf", strings.NewReader("hello"))
	require.NoError(t, err)
	p2, err := s.Save(ctx, DirMaterials, "notes.pdf", strings.NewReader("again"))
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
	assert.True(t, strings.HasPrefix(p1, DirMaterials+"/"))
	assert.True(t, strings.HasSuffix(p1, "-notes.pdf"))

	f, err := s.Open(p1)
	require.NoError(t, err)
	body, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "hello", string(body))

	require.NoError(t, s.Remove(p1))
	_, err = s.Open(p1)
	assert.Error(t, err)
	assert.NoError(t, s.Remove(p1), "removing twice is not an error")
}

func TestSaveStripsDirectories(t *testing.T) {
	s := NewFromFs(afero.NewMemMapFs())
	p, err := s.Save(context.Background(), DirStudentDocuments, "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, DirStudentDocuments+"/"))
	assert.True(t, strings.HasSuffix(p, "-passwd"))
}

func TestOpenRejectsEscapes(t *testing.T) {
	s := NewFromFs(afero.NewMemMapFs())
	_, err := s.Open("")
	assert.Error(t, err)
}
