package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ==================== 约束 ====================

// MaxUploadSize 上传大小上限 16MB，超过的在进处理逻辑前就拒掉
const MaxUploadSize = 16 << 20

// ErrNoFile 请求里没有文件或文件名为空
var ErrNoFile = errors.New("no file")

// ErrTypeNotAllowed 扩展名不在白名单里
var ErrTypeNotAllowed = errors.New("file type not allowed")

// 扩展名白名单
var allowedExtensions = map[string]bool{
	"pdf": true, "png": true, "jpg": true, "jpeg": true,
	"doc": true, "docx": true, "xls": true, "xlsx": true,
}

// AllowedFile 扩展名是否在白名单里
func AllowedFile(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[idx+1:])]
}

// ==================== 接口定义 ====================

// StoredFile 入库结果：访问 URL + 清洗后的原始文件名
type StoredFile struct {
	URL  string
	Name string
}

// StorageProvider 存储提供者接口
type StorageProvider interface {
	// Store 校验并保存文件，返回访问 URL 和清洗后的文件名
	Store(ctx context.Context, data []byte, originalName string) (*StoredFile, error)
}

// ==================== 配置 ====================

type StorageConfig struct {
	Provider string // "local" | "s3"

	// local
	UploadDir string // 本地存储目录
	BaseURL   string // 访问路径前缀，默认 /uploads

	// s3
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	CDNDomain string // CDN域名 (可选)
	BasePath  string // 基础路径前缀
}

// ==================== 工厂方法 ====================

func NewStorageProvider(cfg *StorageConfig) (StorageProvider, error) {
	switch cfg.Provider {
	case "local", "":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("不支持的存储提供者: %s", cfg.Provider)
	}
}

// ==================== 本地存储 (默认) ====================

type LocalStorage struct {
	uploadDir string
	baseURL   string
}

func NewLocalStorage(cfg *StorageConfig) (*LocalStorage, error) {
	uploadDir := cfg.UploadDir
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "/uploads"
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}

	return &LocalStorage{
		uploadDir: uploadDir,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Store 保存文件到本地目录
// 文件名先清洗再加 uuid 前缀，保证唯一且不会越出目录
func (s *LocalStorage) Store(ctx context.Context, data []byte, originalName string) (*StoredFile, error) {
	if originalName == "" {
		return nil, ErrNoFile
	}
	if !AllowedFile(originalName) {
		return nil, ErrTypeNotAllowed
	}

	filename := SecureFilename(originalName)
	storedName := fmt.Sprintf("%s-%s", uuid.New().String(), filename)

	target := filepath.Join(s.uploadDir, storedName)
	// 清洗后不应该再有路径成分，这里再兜一道
	if filepath.Dir(target) != filepath.Clean(s.uploadDir) {
		return nil, ErrTypeNotAllowed
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return nil, err
	}

	return &StoredFile{
		URL:  s.baseURL + "/" + storedName,
		Name: filename,
	}, nil
}

// Dir 本地存储目录，路由层把它挂到 /uploads 下做静态服务
func (s *LocalStorage) Dir() string {
	return s.uploadDir
}

// ==================== S3 实现 ====================

type S3Storage struct {
	client    *s3.Client
	bucket    string
	region    string
	cdnDomain string
	basePath  string
}

func NewS3Storage(cfg *StorageConfig) (*S3Storage, error) {
	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("加载AWS配置失败: %v", err)
	}

	client := s3.NewFromConfig(awsCfg)

	return &S3Storage{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		cdnDomain: cfg.CDNDomain,
		basePath:  cfg.BasePath,
	}, nil
}

func (s *S3Storage) Store(ctx context.Context, data []byte, originalName string) (*StoredFile, error) {
	if originalName == "" {
		return nil, ErrNoFile
	}
	if !AllowedFile(originalName) {
		return nil, ErrTypeNotAllowed
	}

	filename := SecureFilename(originalName)
	key := s.generateKey(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(http.DetectContentType(data)),
	})
	if err != nil {
		return nil, fmt.Errorf("上传S3失败: %v", err)
	}

	return &StoredFile{
		URL:  s.getPublicURL(key),
		Name: filename,
	}, nil
}

func (s *S3Storage) generateKey(filename string) string {
	newFilename := fmt.Sprintf("%s-%s", uuid.New().String(), filename)

	datePath := time.Now().Format("2006/01/02")
	if s.basePath != "" {
		return fmt.Sprintf("%s/%s/%s", s.basePath, datePath, newFilename)
	}
	return fmt.Sprintf("%s/%s", datePath, newFilename)
}

func (s *S3Storage) getPublicURL(key string) string {
	if s.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.cdnDomain, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// ==================== 工具函数 ====================

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename 清洗文件名
// 去掉路径成分，不安全字符换成下划线，行为对齐 werkzeug 的 secure_filename
func SecureFilename(name string) string {
	// 同时处理两种分隔符，上传方可能是 windows
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "file"
	}
	return name
}
