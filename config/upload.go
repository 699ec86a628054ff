package config

// Upload 附件上传限制
type Upload struct {
	// 单张图片最大字节数，默认 10MB
	MaxImageSize int64 `json:"max_image_size" yaml:"max_image_size"`
}

const defaultMaxImageSize = 10 << 20

func (u *Upload) ImageSizeLimit() int64 {
	if u == nil || u.MaxImageSize <= 0 {
		return defaultMaxImageSize
	}
	return u.MaxImageSize
}
