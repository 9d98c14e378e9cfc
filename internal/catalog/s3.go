// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/bgarena/bgarena/internal/cacheutil"
	"github.com/bgarena/bgarena/internal/log"
)

const s3Scheme = "s3://"

// ObjectGetter is the slice of the S3 client the loader needs. HeadObject
// supplies the version the cache entry is keyed on.
type ObjectGetter interface {
	HeadObject(ctx context.Context, params *s3v2.HeadObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

type s3Location struct {
	bucket string
	key    string
}

func (l s3Location) String() string {
	return s3Scheme + l.bucket + "/" + l.key
}

// parseS3URI splits s3://bucket/key.
func parseS3URI(uri string) (s3Location, error) {
	rest := strings.TrimPrefix(uri, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return s3Location{}, fmt.Errorf("%w: want s3://bucket/key, got %s", ErrUnsupportedSource, uri)
	}
	return s3Location{bucket: bucket, key: key}, nil
}

// fetchS3 returns the object body. Cache entries are keyed on the object's
// VersionId, or its ETag when the bucket is unversioned, so a changed object
// is always fetched again.
func fetchS3(ctx context.Context, loc s3Location, o *options) ([]byte, error) {
	if err := cacheutil.Purge(o.cacheClean); err != nil {
		log.WithError(err).Warn("failed to purge cache")
	}

	getter := o.getter
	if getter == nil {
		cfg, err := loadAWSConfig(ctx, o)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		getter = newS3(cfg, o.endpoint)
	}

	head, err := getter.HeadObject(ctx, &s3v2.HeadObjectInput{
		Bucket: awsv2.String(loc.bucket),
		Key:    awsv2.String(loc.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get S3 object %s: %w", loc, err)
	}

	versionID := awsv2.ToString(head.VersionId)
	version := versionID
	if version == "" {
		version = strings.Trim(awsv2.ToString(head.ETag), `"`)
	}
	cacheable := o.cache && version != ""

	subdirs := []string{"s3", loc.bucket}
	cacheKey := loc.key + "@" + version
	if cacheable {
		if entry, ok := cacheutil.Read(subdirs, cacheKey); ok {
			log.Debugf("catalog from cache: %s version=%s age=%s", loc, version, entry.Age())
			return entry.Data, nil
		}
	}

	input := &s3v2.GetObjectInput{
		Bucket: awsv2.String(loc.bucket),
		Key:    awsv2.String(loc.key),
	}
	if versionID != "" {
		input.VersionId = awsv2.String(versionID)
	}
	result, err := getter.GetObject(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get S3 object %s: %w", loc, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body: %w", err)
	}

	if cacheable {
		if err := cacheutil.Write(subdirs, cacheKey, data); err != nil {
			log.WithError(err).Error("error writing to cache")
		}
	}
	return data, nil
}

// loadAWSConfig inherits the shell's AWS setup (AWS_PROFILE, shared config,
// env, IMDS) with optional profile and region overrides.
func loadAWSConfig(ctx context.Context, o *options) (awsv2.Config, error) {
	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	log.Debugf("aws config: profile=%s region=%s", o.profile, o.region)
	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// newS3 builds the S3 client. A custom endpoint switches to path-style
// addressing, which S3 compatible stores expect.
func newS3(cfg awsv2.Config, endpoint string) *s3v2.Client {
	return s3v2.NewFromConfig(cfg, func(so *s3v2.Options) {
		if endpoint != "" {
			so.BaseEndpoint = awsv2.String(endpoint)
			so.UsePathStyle = true
		}
	})
}
