package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"Notely/pkg/response"
	"Notely/types"

	"github.com/go-playground/validator/v10"
	"github.com/sourcegraph/conc/iter"
	_ "golang.org/x/image/webp"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var allowedImageFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

// validateSaveNote 校验保存载荷，收集全部字段错误后一次返回。
// 图片字节的解码校验各自独立，并发执行；通过校验的图片会补全 ContentType。
func validateSaveNote(req *types.SaveNoteRequest, maxImageSize int64) error {
	ve := &response.ValidationError{}

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			ve.Add(strings.ToLower(fe.Field()), fieldMessage(fe))
		}
	}

	msgs := make([]string, len(req.Images))
	iter.ForEachIdx(req.Images, func(i int, img **types.SaveNoteImage) {
		if err := checkImage(*img, maxImageSize); err != nil {
			msgs[i] = err.Error()
		}
	})
	for i, msg := range msgs {
		if msg != "" {
			ve.Add(fmt.Sprintf("images[%d]", i), msg)
		}
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// checkImage 校验单张图片并在缺省时按解码格式补全 ContentType
func checkImage(img *types.SaveNoteImage, maxImageSize int64) error {
	if len(img.Data) == 0 {
		return errors.New("image data must not be empty")
	}
	if int64(len(img.Data)) > maxImageSize {
		return fmt.Errorf("image exceeds %d bytes", maxImageSize)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return errors.New("unrecognized image data")
	}
	if !allowedImageFormats[strings.ToLower(format)] {
		return fmt.Errorf("unsupported image format %q", format)
	}

	if img.ContentType == "" {
		img.ContentType = "image/" + strings.ToLower(format)
	}
	return nil
}
