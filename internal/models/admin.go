package models

import "time"

type ActionType string

const (
	ActionPromoteUser       ActionType = "PROMOTE_USER"
	ActionDeleteUser        ActionType = "DELETE_USER"
	ActionDeleteCommunity   ActionType = "DELETE_COMMUNITY_COLLECTION"
	ActionEditCommunity     ActionType = "EDIT_COMMUNITY_COLLECTION"
	ActionCreateRecommended ActionType = "CREATE_RECOMMENDED"
	ActionUpdateRecommended ActionType = "UPDATE_RECOMMENDED"
	ActionDeleteRecommended ActionType = "DELETE_RECOMMENDED"
	ActionUpdateSettings    ActionType = "UPDATE_SETTINGS"
)

type AdminAuditLog struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	AdminID    string     `gorm:"index" json:"adminId"`
	Action     ActionType `gorm:"type:text" json:"action"`
	TargetID   string     `json:"targetId"`
	TargetType string     `json:"targetType"`
	Reason     string     `json:"reason"`
}

// SystemSettings keys
const (
	SettingMaintenanceMode  = "maintenance_mode"
	SettingMaintenanceETA   = "maintenance_eta"
	SettingRegistrationOpen = "registration_open"
	SettingCommunityEnabled = "community_enabled"
)

type SystemSettings struct {
	Key       string    `gorm:"primaryKey;type:text" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DashboardMetrics is the admin dashboard aggregate (never persisted)
type DashboardMetrics struct {
	TotalUsers           int64   `json:"totalUsers"`
	VerifiedUsers        int64   `json:"verifiedUsers"`
	NewUsersToday        int64   `json:"newUsersToday"`
	TotalCollections     int64   `json:"totalCollections"`
	TotalItems           int64   `json:"totalItems"`
	OwnedItems           int64   `json:"ownedItems"`
	CommunityCollections int64   `json:"communityCollections"`
	TotalUpvotes         int64   `json:"totalUpvotes"`
	Wishlists            int64   `json:"wishlists"`
	AvgItemsPerUser      float64 `json:"avgItemsPerUser"`
}
