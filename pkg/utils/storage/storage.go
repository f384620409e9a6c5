package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

func getS3Client() (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("R2_ACCESS_KEY"),
			os.Getenv("R2_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %v", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", os.Getenv("R2_ACCOUNT_ID")))
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return client, nil
}

// objectKey timestamp + uuid önekiyle çakışmaya dayanıklı dosya adı üretir.
// İçerik hash'i kullanılmaz, milisaniye öneki yeterli kabul edilir.
func objectKey(folder, filename string) string {
	ext := filepath.Ext(filename)
	base := slug.Make(filename[:len(filename)-len(ext)])
	unique := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.New().String()[:8])
	return filepath.Join(folder, unique+"-"+base+ext)
}

func publicURL(key string) string {
	return fmt.Sprintf("%s/%s", os.Getenv("R2_PUBLIC_URL"), key)
}

// UploadBuffer işlenmiş içeriği (ör. yeniden encode edilmiş görsel) yükler
func UploadBuffer(buf *bytes.Buffer, folder, filename, contentType string) (string, error) {
	client, err := getS3Client()
	if err != nil {
		return "", err
	}

	key := objectKey(folder, filename)

	_, err = client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("R2_BUCKET_NAME")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("could not upload to storage: %v", err)
	}

	return publicURL(key), nil
}

// UploadFile multipart dosyayı olduğu gibi yükler (CV, PDF katalog)
func UploadFile(file *multipart.FileHeader, folder string) (string, error) {
	client, err := getS3Client()
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("could not open file: %v", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("could not read file: %v", err)
	}

	key := objectKey(folder, filepath.Base(file.Filename))
	contentType := file.Header.Get("Content-Type")

	_, err = client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("R2_BUCKET_NAME")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("could not upload to storage: %v", err)
	}

	return publicURL(key), nil
}

// DeleteFile public URL'den key'i çıkarıp nesneyi siler
func DeleteFile(fileURL string) error {
	client, err := getS3Client()
	if err != nil {
		return err
	}

	prefix := os.Getenv("R2_PUBLIC_URL") + "/"
	if len(fileURL) <= len(prefix) {
		return fmt.Errorf("invalid file URL: %s", fileURL)
	}
	key := fileURL[len(prefix):]

	_, err = client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(os.Getenv("R2_BUCKET_NAME")),
		Key:    aws.String(key),
	})

	return err
}
