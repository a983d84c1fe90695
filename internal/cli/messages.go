package cli

// User-facing messages shared by the commands and the compose TUI.
const (
	msgKeyUnavailable   = "API Key của bạn không khả dụng hoặc đã hết hạn. Vui lòng thiết lập lại."
	msgGenerationFailed = "Có lỗi xảy ra khi tạo giáo án: "
	msgGenerating       = "Đang tạo..."
	msgEmptyTopic       = "Vui lòng nhập chủ đề bài học."
	msgBusy             = "Đang tạo giáo án, vui lòng đợi."

	gateTitle   = "Yêu cầu API Key"
	gateBody    = "Để bảo mật và sử dụng hạn mức riêng, vui lòng nhập API Key của bạn từ Google AI Studio."
	gateStorage = "Khóa của bạn được lưu cục bộ và không được gửi đi bất cứ đâu ngoài máy chủ Google."
	gateBilling = "Tìm hiểu về phí và thanh toán:"
	billingURL  = "https://ai.google.dev/gemini-api/docs/billing"

	topicPlaceholder = "Ví dụ: Phép nhân và phép chia hai số nguyên"
)
