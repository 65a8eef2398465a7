package constant

import "time"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

const DefaultToastTTL = 3 * time.Second

func (s Severity) Valid() bool {
	switch s {
	case SeveritySuccess, SeverityError, SeverityInfo:
		return true
	}
	return false
}

// Toast texts shown by the storefront and admin screens.
const (
	ToastAddedToCartFmt    = "Đã thêm \"%s\" vào dự toán"
	ToastCartUpdated       = "Đã cập nhật dự toán"
	ToastCartItemRemoved   = "Đã xóa sản phẩm khỏi dự toán"
	ToastCartCleared       = "Đã xóa toàn bộ dự toán"
	ToastOutOfStock        = "Sản phẩm tạm hết hàng"
	ToastLoginSuccess      = "Đăng nhập thành công!"
	ToastLoginFailed       = "Tên đăng nhập hoặc mật khẩu không đúng"
	ToastLoggedOut         = "Đã đăng xuất"
	ToastProductCreated    = "Đã thêm sản phẩm mới thành công!"
	ToastProductUpdated    = "Đã cập nhật sản phẩm thành công!"
	ToastProductDeletedFmt = "Đã xóa sản phẩm %s"
	ToastCatalogReset      = "Đã khôi phục dữ liệu gốc"
	ToastResetConfirm      = "Bạn có chắc muốn khôi phục dữ liệu gốc? Mọi thay đổi sẽ bị mất."
	ToastStorageFailed     = "Không thể lưu dữ liệu"
	ToastGenericError      = "Đã có lỗi xảy ra, vui lòng thử lại"
)

const (
	ToastNotFound  = "Không tìm thấy sản phẩm"
	ToastEmptyCart = "Dự toán đang trống"
	ToastInvalid   = "Dữ liệu không hợp lệ"
)
