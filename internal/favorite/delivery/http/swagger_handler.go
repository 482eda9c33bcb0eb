package http

// SetFavorite godoc
// @Summary Set favorite state
// @Description Bring the caller's favorite on a review to the requested state. Repeating a request changes nothing.
// @Tags Favorites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param request body object{favorite=bool} true "Desired state"
// @Success 200 {object} object{success=bool,data=domain.Result}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Failure 410 {object} object{success=bool,error=string,code=string}
// @Failure 429 {object} object{success=bool,error=string,code=string}
// @Router /api/reviews/{id}/favorite [put]
func (h *FavoriteHandler) SetFavoriteDoc() {}

// ListFavorites godoc
// @Summary List my favorites
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=[]domain.Summary}
// @Failure 410 {object} object{success=bool,error=string,code=string}
// @Router /api/favorites [get]
func (h *FavoriteHandler) ListFavoritesDoc() {}

// GetFavorite godoc
// @Summary Get my favorite on a review
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param reviewId path int true "Review ID"
// @Success 200 {object} object{success=bool,data=domain.Summary}
// @Failure 404 {object} object{success=bool,error=string,code=string}
// @Failure 410 {object} object{success=bool,error=string,code=string}
// @Router /api/favorites/{reviewId} [get]
func (h *FavoriteHandler) GetFavoriteDoc() {}
