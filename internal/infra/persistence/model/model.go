package model

// All returns every persistence model in dependency order, parents before
// children, for schema migration.
func All() []any {
	return []any{
		&AttributeModel{},
		&AttributeValueModel{},
		&ProductModel{},
		&VariantModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&OrderPaymentModel{},
		&OrderEventModel{},
		&StoreSettingModel{},
	}
}
