package models

type Parent struct {
	ID          uint   `json:"id" gorm:"primary_key"`
	Name        string `json:"name"`
	Email       string `json:"email" gorm:"uniqueIndex"`
	Password    string `json:"-"`
	Role        string `json:"role"`
	Avatar      string `json:"avatar"`
	FirebaseUID string `json:"firebase_uid" gorm:"uniqueIndex"`
	DeviceToken string `json:"-"` // FCM token of the parent's own device
}
