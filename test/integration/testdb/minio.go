//go:build integration

package testdb

import (
	"context"
	"time"

	"audiocheck/internal/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// MinIOAccessKey is the default access key for test MinIO.
	MinIOAccessKey = "minioadmin"
	// MinIOSecretKey is the default secret key for test MinIO.
	MinIOSecretKey = "minioadmin"
	// MinIOBucket is the bucket reports are archived to in tests.
	MinIOBucket = "audiocheck-reports"
)

// MinIOContainer wraps a MinIO testcontainer with a bucket ready for reports.
type MinIOContainer struct {
	Container testcontainers.Container
	Endpoint  string
	Client    *s3.Client
}

// SetupMinIO starts a MinIO testcontainer and creates MinIOBucket.
func SetupMinIO(ctx context.Context) (*MinIOContainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     MinIOAccessKey,
			"MINIO_ROOT_PASSWORD": MinIOSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/ready").WithPort("9000/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	port, err := container.MappedPort(ctx, "9000")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	endpoint := host + ":" + port.Port()

	client, err := adminClient(ctx, endpoint)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if _, err := client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(MinIOBucket)}); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &MinIOContainer{
		Container: container,
		Endpoint:  endpoint,
		Client:    client,
	}, nil
}

// adminClient creates a raw S3 client for bucket setup and assertions.
func adminClient(ctx context.Context, endpoint string) (*s3.Client, error) {
	endpointURL := "http://" + endpoint

	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:               endpointURL,
			HostnameImmutable: true,
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("us-east-1"),
		config.WithEndpointResolverWithOptions(customResolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(MinIOAccessKey, MinIOSecretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	}), nil
}

// Options returns the settings storage.NewS3Client needs to reach the container.
func (mc *MinIOContainer) Options() storage.S3Options {
	return storage.S3Options{
		Endpoint:  mc.Endpoint,
		AccessKey: MinIOAccessKey,
		SecretKey: MinIOSecretKey,
		Bucket:    MinIOBucket,
	}
}

// Keys lists every object key under prefix.
func (mc *MinIOContainer) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	paginator := s3.NewListObjectsV2Paginator(mc.Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(MinIOBucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}

// Cleanup terminates the MinIO container.
func (mc *MinIOContainer) Cleanup(ctx context.Context) error {
	if mc.Container != nil {
		return mc.Container.Terminate(ctx)
	}
	return nil
}
