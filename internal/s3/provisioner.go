package s3

import (
	"context"
	"fmt"
	"log/slog"
)

// BucketService is the subset of Client the provisioner needs.
type BucketService interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	CreateBucket(ctx context.Context, bucket string) error
}

// Provisioner ensures the destination bucket exists before a run uploads
// anything.
type Provisioner struct {
	svc BucketService
}

// NewProvisioner creates a Provisioner over the given bucket service.
func NewProvisioner(svc BucketService) *Provisioner {
	return &Provisioner{svc: svc}
}

// Ensure checks the bucket and, when it is missing, consults authorize
// before creating it. An existing bucket is never touched. A missing bucket
// with creation declined fails the run.
func (p *Provisioner) Ensure(ctx context.Context, bucket string, authorize func() bool) error {
	exists, err := p.svc.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		slog.Debug("Bucket exists", slog.String("bucket", bucket))
		return nil
	}

	if authorize == nil || !authorize() {
		return fmt.Errorf("bucket %s does not exist and creation was not authorized", bucket)
	}

	slog.Info("Creating bucket", slog.String("bucket", bucket))
	if err := p.svc.CreateBucket(ctx, bucket); err != nil {
		return err
	}
	return nil
}
