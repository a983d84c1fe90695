package generation

import "github.com/alexanderramin/splanner/internal/llm"

func str(desc string) *llm.Schema {
	return &llm.Schema{Type: llm.TypeString, Description: desc}
}

func strList(desc string) *llm.Schema {
	return &llm.Schema{Type: llm.TypeArray, Items: str(""), Description: desc}
}

func object(props map[string]*llm.Schema, required ...string) *llm.Schema {
	return &llm.Schema{Type: llm.TypeObject, Properties: props, Required: required}
}

func phase() *llm.Schema {
	return object(map[string]*llm.Schema{
		"objective":       str(""),
		"instruction":     str(""),
		"expectedProduct": str(""),
	})
}

// LessonContentSchema is the structured-output schema sent with every
// generation request. Its field names match content.PartialContent.
func LessonContentSchema() *llm.Schema {
	return object(map[string]*llm.Schema{
		"knowledge":      strList("Danh sách các yêu cầu cần đạt về kiến thức"),
		"mathCompetency": str("Mô tả cụ thể về năng lực toán học được hình thành"),
		"digitalCompetencies": {
			Type: llm.TypeArray,
			Items: object(map[string]*llm.Schema{
				"code":   str("Mã năng lực số (ví dụ: 3.1.TC1a)"),
				"name":   str("Tên năng lực số"),
				"action": str("Biểu hiện/hành động cụ thể của học sinh"),
			}, "code", "name", "action"),
		},
		"qualities": strList("Các phẩm chất được tích hợp"),
		"equipment": str("Thiết bị dạy học và học liệu"),
		"startup": object(map[string]*llm.Schema{
			"objective":   str(""),
			"instruction": str(""),
			"execution":   str(""),
			"discussion":  str(""),
			"conclusion":  str(""),
		}),
		"formation": {
			Type: llm.TypeArray,
			Items: object(map[string]*llm.Schema{
				"title":           str(""),
				"objective":       str(""),
				"instruction":     str(""),
				"expectedProduct": str(""),
			}),
		},
		"practice":    phase(),
		"application": phase(),
	})
}
