package request

type ListOwnOrdersQuery struct {
	Include string `form:"include" binding:"omitempty,oneof=all"`
}

func (q ListOwnOrdersQuery) IncludeAll() bool {
	return q.Include == "all"
}
