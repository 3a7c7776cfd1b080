package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"leaguelookup/pkg/config"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// Logger that we will use to save our logs.
// Every line goes to the console writer and to a temporary file that can be uploaded later.
type NewLogger struct {
	zerolog.Logger

	mu       sync.Mutex
	logFile  *os.File
	filePath string
	bucket   config.BucketConfiguration
}

// Create the log instance with a temporary file.
func CreateLogger(cfg *config.Config) (*NewLogger, error) {
	f, err := os.CreateTemp("", "log-*.log")
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	l := &NewLogger{
		logFile:  f,
		filePath: f.Name(),
		bucket:   cfg.Bucket,
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	l.Logger = zerolog.New(zerolog.MultiLevelWriter(console, &lockedWriter{l: l})).
		Level(level).
		With().
		Timestamp().
		Logger()

	return l, nil
}

// Nop returns a logger that discards everything, used on tests.
func Nop() *NewLogger {
	return &NewLogger{Logger: zerolog.Nop()}
}

// Writer used by zerolog for the file, sharing the file mutex.
type lockedWriter struct {
	l *NewLogger
}

func (w *lockedWriter) Write(p []byte) (int, error) {
	w.l.mu.Lock()
	defer w.l.mu.Unlock()
	return w.l.logFile.Write(p)
}

// Log a simple info.
func (l *NewLogger) Infof(format string, args ...any) {
	l.Info().Msgf(format, args...)
}

// Log a warning.
func (l *NewLogger) Warnf(format string, args ...any) {
	l.Warn().Msgf(format, args...)
}

// Log debugging data.
func (l *NewLogger) Debugf(format string, args ...any) {
	l.Debug().Msgf(format, args...)
}

// FilePath of the session log.
func (l *NewLogger) FilePath() string {
	return l.filePath
}

// Close removes the temporary file.
func (l *NewLogger) Close() error {
	if l.logFile == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.logFile.Close(); err != nil {
		return err
	}
	return os.Remove(l.filePath)
}

// Upload the log to a s3 bucket.
func (l *NewLogger) UploadToS3Bucket(ctx context.Context, objectKey string) error {
	if l.logFile == nil {
		return fmt.Errorf("logger has no file to upload")
	}
	if !l.bucket.Enabled() {
		return fmt.Errorf("log bucket is not configured")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.logFile.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	// Get the config.
	cfg := aws.Config{
		Region: l.bucket.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				l.bucket.AccessKey,
				l.bucket.AccessSecret,
				"",
			),
		),
	}

	// Create the client.
	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if l.bucket.Endpoint != "" {
			o.BaseEndpoint = aws.String(l.bucket.Endpoint)
		}
	})

	// Run the put.
	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(l.bucket.LogBucket),
		Key:    aws.String(objectKey),
		Body:   l.logFile,
		ACL:    types.ObjectCannedACLPrivate,
	})

	return finishUpload(l.logFile, objectKey, err)
}

// Put the offset back at the end so writes keep appending.
func finishUpload(f io.Seeker, objectKey string, uploadErr error) error {
	var errs []error
	if uploadErr != nil {
		errs = append(errs, fmt.Errorf("failed to upload %s to S3 bucket: %w", objectKey, uploadErr))
	}
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		errs = append(errs, fmt.Errorf("failed to restore the file offset: %w", err))
	}
	return errors.Join(errs...)
}
