package archive_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/revwatch/internal/adapters/archive"
	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func buildDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "bin", "Windows")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "MyGame", "Binaries"), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "MyGame", "Binaries", "MyGame.exe"), []byte("exe"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Manifest.txt"), []byte("manifest"), domain.FilePerm))
	return dir
}

func writeArchive(content string) func(context.Context, string, string) error {
	return func(_ context.Context, _, dst string) error {
		return os.WriteFile(dst, []byte(content), domain.FilePerm)
	}
}

func newPackager(t *testing.T) (*archive.Packager, *mocks.MockCompressor) {
	t.Helper()
	ctrl := gomock.NewController(t)
	compressor := mocks.NewMockCompressor(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return archive.NewPackagerWithCompressor(compressor, log), compressor
}

func TestPackager_Archive_NamesAndTemporaryFile(t *testing.T) {
	packager, compressor := newPackager(t)
	src := buildDir(t)
	out := filepath.Join(t.TempDir(), "builds")

	wantTmp := filepath.Join(out, "[103] MyGame (Shipping)"+domain.TransferSuffix+".zip")
	compressor.EXPECT().Compress(gomock.Any(), src, wantTmp).DoAndReturn(writeArchive("zip"))

	path, err := packager.Archive(context.Background(), domain.ArchiveRequest{
		SourceDir: src,
		NewName:   domain.BuildName(103, "MyGame", "Shipping"),
		OutputDir: out,
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(out, "[103] MyGame (Shipping).zip"), path)
	assert.FileExists(t, path)
	assert.NoFileExists(t, wantTmp)
}

func TestPackager_Archive_DefaultsNextToSource(t *testing.T) {
	packager, compressor := newPackager(t)
	src := buildDir(t)

	compressor.EXPECT().Compress(gomock.Any(), src, gomock.Any()).DoAndReturn(writeArchive("zip"))

	path, err := packager.Archive(context.Background(), domain.ArchiveRequest{SourceDir: src})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(src), "Windows.zip"), path)
}

func TestPackager_Archive_Idempotent(t *testing.T) {
	packager, compressor := newPackager(t)
	src := buildDir(t)
	req := domain.ArchiveRequest{SourceDir: src, NewName: "build", OutputDir: t.TempDir()}

	compressor.EXPECT().Compress(gomock.Any(), src, gomock.Any()).DoAndReturn(writeArchive("first")).Times(1)

	first, err := packager.Archive(context.Background(), req)
	require.NoError(t, err)
	second, err := packager.Archive(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestPackager_Archive_Override(t *testing.T) {
	packager, compressor := newPackager(t)
	src := buildDir(t)
	req := domain.ArchiveRequest{SourceDir: src, NewName: "build", OutputDir: t.TempDir(), Override: true}

	gomock.InOrder(
		compressor.EXPECT().Compress(gomock.Any(), src, gomock.Any()).DoAndReturn(writeArchive("first")),
		compressor.EXPECT().Compress(gomock.Any(), src, gomock.Any()).DoAndReturn(writeArchive("second")),
	)

	_, err := packager.Archive(context.Background(), req)
	require.NoError(t, err)
	path, err := packager.Archive(context.Background(), req)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestPackager_Archive_CompressionFailure(t *testing.T) {
	packager, compressor := newPackager(t)
	src := buildDir(t)
	out := t.TempDir()

	compressor.EXPECT().Compress(gomock.Any(), src, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, dst string) error {
			require.NoError(t, os.WriteFile(dst, []byte("partial"), domain.FilePerm))
			return errors.New("disk full")
		})

	_, err := packager.Archive(context.Background(), domain.ArchiveRequest{SourceDir: src, NewName: "build", OutputDir: out})
	require.ErrorIs(t, err, domain.ErrArchiveFailed)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary archive is removed")
}

func TestPackager_Archive_InvalidSource(t *testing.T) {
	packager, _ := newPackager(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, domain.FilePerm))

	_, err := packager.Archive(context.Background(), domain.ArchiveRequest{SourceDir: filepath.Join(dir, "missing")})
	require.ErrorIs(t, err, domain.ErrArchiveSourceMissing)

	_, err = packager.Archive(context.Background(), domain.ArchiveRequest{SourceDir: file})
	require.ErrorIs(t, err, domain.ErrArchiveSourceNotDir)
}

func TestPackager_Archive_NativeEndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	packager := archive.NewPackager(mocks.NewMockCommandRunner(ctrl), log)

	path, err := packager.Archive(context.Background(), domain.ArchiveRequest{
		SourceDir: buildDir(t),
		NewName:   "native",
		OutputDir: t.TempDir(),
		Archiver:  domain.ArchiverNative,
	})
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestPackager_Archive_RunsToCompletionAfterCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	packager := archive.NewPackager(mocks.NewMockCommandRunner(ctrl), log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path, err := packager.Archive(ctx, domain.ArchiveRequest{
		SourceDir: buildDir(t),
		NewName:   "interrupted",
		OutputDir: t.TempDir(),
		Archiver:  domain.ArchiverNative,
	})
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestPackager_Archive_DetachesCompressorContext(t *testing.T) {
	packager, compressor := newPackager(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	compressor.EXPECT().Compress(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _, dst string) error {
			assert.NoError(t, ctx.Err())
			return os.WriteFile(dst, []byte("zip"), domain.FilePerm)
		})

	_, err := packager.Archive(ctx, domain.ArchiveRequest{SourceDir: buildDir(t), OutputDir: t.TempDir()})
	require.NoError(t, err)
}
