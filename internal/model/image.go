package model

// Image 对象存储中的一张图片
// Key 用于删除，URL 用于访问
type Image struct {
	URL string `bson:"url" json:"url"`
	Key string `bson:"key" json:"key"`
}
