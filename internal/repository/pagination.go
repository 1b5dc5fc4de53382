package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// cursorFilter 在基础过滤条件上叠加时间游标
// last 为 nil 时返回第一页，否则只取严格早于 last 的文档
func cursorFilter(base bson.M, last *time.Time) bson.M {
	if last == nil {
		return base
	}
	filter := bson.M{"createdAt": bson.M{"$lt": *last}}
	for k, v := range base {
		filter[k] = v
	}
	return filter
}

// cursorOptions 按 createdAt 倒序取一页
func cursorOptions(limit int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
}
