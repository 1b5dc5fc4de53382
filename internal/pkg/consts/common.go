package consts

const (
	MimePrefixImage = "image"
)

// 分页每页条数
const (
	PostPageSize       = 6
	CommentPageSize    = 3
	SubcommentPageSize = 3
)

// 被屏蔽内容的占位文案
const (
	BlockedPostText    = "该帖子已被版主屏蔽"
	BlockedCommentText = "该评论已被版主屏蔽"
)

// 图片尺寸
const (
	ProfileImageWidth  = 50
	ProfileImageHeight = 50
	PostImageWidth     = 600
	PostImageHeight    = 350
	ImageJPEGQuality   = 90
)
