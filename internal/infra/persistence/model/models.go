// Package model holds the GORM persistence structs. They are exported so the
// gen tool and the migrate command can reach them from other packages.
package model

// All returns every persistence model in dependency order.
func All() []any {
	return []any{
		&StoreSettingsModel{},
		&MenuItemModel{},
		&CustomerModel{},
		&DeliveryAddressModel{},
		&OrderModel{},
		&OrderItemModel{},
		&ReviewModel{},
		&StaffAccountModel{},
		&StaffSessionModel{},
		&CustomerDeviceModel{},
	}
}
