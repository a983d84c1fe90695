package generation

import "fmt"

// BuildPrompt returns the generation prompt for one lesson. It asks for the
// four-activity structure of Công văn 5512 and coded digital competencies
// from Công văn 3456.
func BuildPrompt(req Request) string {
	return fmt.Sprintf(
		"Bạn là một chuyên gia sư phạm hàng đầu. Hãy tạo nội dung giáo án chi tiết cho bài học: \"%s\", lớp %s, môn %s.\n"+
			"Yêu cầu tuân thủ nghiêm ngặt Công văn 5512 (4 hoạt động: Khởi động, Hình thành kiến thức, Luyện tập, Vận dụng) "+
			"và tích hợp các mã Năng lực số cụ thể theo Công văn 3456.",
		req.Topic, req.Grade, req.Subject,
	)
}
