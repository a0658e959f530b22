package dto

// ListParams defines offset based query parameters for catalog listings.
type ListParams struct {
	Limit  int `form:"limit,default=20" binding:"min=0,max=200"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListTokenParams defines token based query parameters for transaction listings.
type ListTokenParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=0,max=200"`
	NextToken *string `form:"nextToken"`
}
