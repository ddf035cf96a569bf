package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"showcase-portal-backend/internal/authz"
	apperrors "showcase-portal-backend/internal/errors"
	"showcase-portal-backend/internal/logger"
	"showcase-portal-backend/internal/metrics"

	"github.com/h2non/filetype"
)

const uploadPrefix = "showcase"

var (
	uploadNameUnsafe = regexp.MustCompile(`[^a-z0-9._-]+`)
	svgOpenTag       = regexp.MustCompile(`(?i)<svg[\s>]`)
	svgActiveContent = regexp.MustCompile(`(?i)<\s*(script|foreignobject|iframe|embed|object)\b|\son[a-z]+\s*=|javascript:|<!entity`)
	allowedImageMIME = map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/gif":  true,
		"image/webp": true,
	}
)

// UploadService stores showcase images
type UploadService struct {
	store           ImageStore
	access          *accessChecker
	publicUploadURL string
	maxSize         int64
	now             func() time.Time
}

// Ensure UploadService implements UploadServiceInterface
var _ UploadServiceInterface = (*UploadService)(nil)

// NewUploadService creates a new UploadService. store may be nil when uploads are disabled.
func NewUploadService(store ImageStore, authorizer *authz.Authorizer, publicUploadURL string, maxSize int64) *UploadService {
	return &UploadService{
		store:           store,
		access:          newAccessChecker(authorizer, nil),
		publicUploadURL: strings.TrimRight(publicUploadURL, "/"),
		maxSize:         maxSize,
		now:             time.Now,
	}
}

// UploadResponse carries the public URL of a stored image
type UploadResponse struct {
	URL string `json:"url"`
}

// UploadImage validates and stores an image uploaded by a logged-in user
func (s *UploadService) UploadImage(ctx context.Context, actor Actor, filename string, r io.Reader) (*UploadResponse, error) {
	// upload is decided by login alone, so the admin list is never consulted
	subject := sysadminSubject(actor)
	if !s.access.authorizer.Allowed(subject, authz.ObjectAny, authz.ActionShowcaseUpload) {
		return nil, apperrors.ErrLoginRequired
	}
	if s.store == nil {
		return nil, apperrors.ErrStorageNotConfigured
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, apperrors.ErrImageTooLarge
	}

	contentType, err := detectImageType(filename, data)
	if err != nil {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		return nil, err
	}

	key := fmt.Sprintf("%s/%s-%s", uploadPrefix, s.now().UTC().Format("2006-01-02-150405.000000"), mungeFilename(filename))
	if err := s.store.Put(ctx, key, data, contentType); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"key":          key,
		"content_type": contentType,
		"size":         len(data),
	}).Info("showcase image uploaded")
	metrics.ImageUploads.WithLabelValues("stored").Inc()

	return &UploadResponse{URL: s.publicUploadURL + "/" + key}, nil
}

func sysadminSubject(actor Actor) authz.Subject {
	return authz.Subject{
		LoggedIn: actor.IsLoggedIn(),
		Sysadmin: actor.IsLoggedIn() && actor.Sysadmin,
	}
}

// detectImageType sniffs data. SVG has no magic number and is accepted on extension plus an <svg> tag,
// provided it carries no scripts, event handlers or embedded documents.
func detectImageType(filename string, data []byte) (string, error) {
	if strings.EqualFold(path.Ext(filename), ".svg") {
		if !svgOpenTag.Match(data) {
			return "", apperrors.ErrUnsupportedImageType
		}
		if svgActiveContent.Match(data) {
			return "", apperrors.ErrActiveImageContent
		}
		return "image/svg+xml", nil
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return "", apperrors.ErrUnsupportedImageType
	}
	if !allowedImageMIME[kind.MIME.Value] {
		return "", apperrors.ErrUnsupportedImageType
	}
	return kind.MIME.Value, nil
}

// mungeFilename keeps the base name lowercase and url-safe
func mungeFilename(filename string) string {
	name := strings.ToLower(path.Base(strings.ReplaceAll(filename, "\\", "/")))
	name = uploadNameUnsafe.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")
	if name == "" {
		name = "image"
	}
	if len(name) > 100 {
		ext := path.Ext(name)
		if len(ext) > 10 {
			ext = ""
		}
		name = name[:100-len(ext)] + ext
	}
	return name
}
