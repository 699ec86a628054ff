package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 生成笔记/图片/文件等实体的唯一ID
func GenID() int64 {
	return node.Generate().Int64()
}
