package global

import (
	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator cho enum của domain
	_ = Validate.RegisterValidation("channel", validateChannel)
	_ = Validate.RegisterValidation("channel_type", validateChannelType)
	_ = Validate.RegisterValidation("cascade_group_name", validateCascadeGroupName)
	_ = Validate.RegisterValidation("routing_status", validateRoutingStatus)
}

// validateChannel kiểm tra channel hợp lệ
func validateChannel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "NHSAPP", "EMAIL", "SMS", "LETTER":
		return true
	}
	return false
}

// validateChannelType kiểm tra loại channel hợp lệ
func validateChannelType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "primary", "secondary":
		return true
	}
	return false
}

// validateCascadeGroupName kiểm tra tên nhóm cascade hợp lệ
func validateCascadeGroupName(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "standard", "translations", "accessible":
		return true
	}
	return false
}

// validateRoutingStatus kiểm tra trạng thái routing config hợp lệ
func validateRoutingStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "DRAFT", "COMPLETED", "DELETED":
		return true
	}
	return false
}
