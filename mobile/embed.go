//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// //go:embed 不能引用上级目录，构建前需要先把内容配置复制到此目录：
//
//	mkdir -p mobile/data && cp data/landing.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/landing.yaml
var dataFS embed.FS
