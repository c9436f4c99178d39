package catalog

// reservedAliases maps attribute names that collide with DynamoDB reserved
// words to the placeholder used in expressions. Any attribute referenced in a
// filter must be looked up through Ref.
var reservedAliases = map[string]string{
	AttrYear: "#yr",
	AttrCast: "#cst",
}

// Ref returns the token to use for attr inside an expression, and whether that
// token is an alias that must be registered in ExpressionAttributeNames.
func Ref(attr string) (token string, aliased bool) {
	if alias, ok := reservedAliases[attr]; ok {
		return alias, true
	}
	return attr, false
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	out := make(map[string]string, len(reservedAliases))
	for attr, alias := range reservedAliases {
		out[attr] = alias
	}
	return out
}
