package services

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/unsaid/internal/client/client"
	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/filex"
	"github.com/dmitrijs2005/unsaid/internal/netx"
)

// MaxAudioSize caps a voice note upload.
const MaxAudioSize = netx.MaxDownloadSize

const defaultAudioType = "audio/webm"

// AudioService moves voice notes between the audio directory and object
// storage through presigned URLs handed out by the server.
type AudioService struct {
	client client.Client
	dir    string
	http   *http.Client
}

func NewAudioService(c client.Client, dir string, hc *http.Client) *AudioService {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &AudioService{client: c, dir: dir, http: hc}
}

var audioTypes = map[string]string{
	".webm": "audio/webm",
	".ogg":  "audio/ogg",
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".wav":  "audio/wav",
}

func audioType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := audioTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return defaultAudioType
}

// Attach uploads the file at path and returns the audio id the server
// assigned to it.
func (s *AudioService) Attach(ctx context.Context, path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", common.ErrorValidation, path)
	}
	if fi.Size() > MaxAudioSize {
		return "", fmt.Errorf("%w: voice note larger than %d bytes", common.ErrorValidation, MaxAudioSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	audioID, url, err := s.client.PresignAudioUpload(ctx, "")
	if err != nil {
		return "", err
	}

	if err := netx.Upload(ctx, s.http, url, data, audioType(path)); err != nil {
		return "", err
	}
	return audioID, nil
}

// Fetch downloads a voice note into the audio directory and returns the
// local path. A file already present is reused.
func (s *AudioService) Fetch(ctx context.Context, audioID string) (string, error) {
	dir, err := filex.EnsureDir(s.dir)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, filepath.Base(audioID)+".webm")

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	url, err := s.client.PresignAudioDownload(ctx, audioID)
	if err != nil {
		return "", err
	}

	data, err := netx.Download(ctx, s.http, url)
	if err != nil {
		return "", err
	}

	if err := filex.WriteFileAtomic(path, data); err != nil {
		return "", err
	}
	return path, nil
}
