// This file implements BlogService: blog CRUD, transactional delete
// of a blog together with its comments, and presigned upload URLs for
// blog images.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/dbx"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/config"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/models"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/blogs"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/repomanager"
)

// Seams for the AWS SDK, so presign flows are testable without a
// running object store.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

type BlogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewBlogService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *BlogService {
	return &BlogService{
		db:          db,
		repomanager: m,
		config:      cfg,
	}
}

func (s *BlogService) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	return s.repomanager.Blogs(s.db).Create(ctx, blog)
}

func (s *BlogService) Get(ctx context.Context, id string) (*models.Blog, error) {
	return s.repomanager.Blogs(s.db).GetByID(ctx, id)
}

func (s *BlogService) List(ctx context.Context) ([]*models.Blog, error) {
	return s.repomanager.Blogs(s.db).List(ctx)
}

func (s *BlogService) Update(ctx context.Context, id string, params blogs.UpdateParams) (*models.Blog, error) {
	return s.repomanager.Blogs(s.db).Update(ctx, id, params)
}

// Delete removes the blog and its comments in one transaction, since
// comments carry no foreign key to enforce the cleanup.
func (s *BlogService) Delete(ctx context.Context, id string) (*models.Blog, error) {
	var deleted *models.Blog

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Comments(tx).DeleteByBlog(ctx, id); err != nil {
			return err
		}
		var delErr error
		deleted, delErr = s.repomanager.Blogs(tx).Delete(ctx, id)
		return delErr
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

// randomImageKey buckets uploads by date so the store stays browsable.
func randomImageKey() string {
	d := time.Now()
	return fmt.Sprintf("blogs/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *BlogService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// GetUploadURL returns a fresh object key and a presigned PUT URL the
// client can upload a blog image to. The URL expires in 15 minutes.
func (s *BlogService) GetUploadURL(ctx context.Context) (string, string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := randomImageKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))

	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}
