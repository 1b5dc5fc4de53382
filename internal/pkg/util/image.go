package util

import (
	"bytes"
	"io"

	"Hearth/internal/pkg/consts"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// ResizeProfileImage 把头像压缩为 50x50 的 JPEG
func ResizeProfileImage(r io.Reader) (*bytes.Buffer, error) {
	return resizeJPEG(r, consts.ProfileImageWidth, consts.ProfileImageHeight)
}

// ResizePostImage 把帖子图片压缩为 600x350 的 JPEG
func ResizePostImage(r io.Reader) (*bytes.Buffer, error) {
	return resizeJPEG(r, consts.PostImageWidth, consts.PostImageHeight)
}

func resizeJPEG(r io.Reader, width, height int) (*bytes.Buffer, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "图片解码失败")
	}

	resized := imaging.Resize(img, width, height, imaging.Lanczos)

	buf := &bytes.Buffer{}
	if err = imaging.Encode(buf, resized, imaging.JPEG, imaging.JPEGQuality(consts.ImageJPEGQuality)); err != nil {
		return nil, errors.Wrap(err, "图片编码失败")
	}
	return buf, nil
}
