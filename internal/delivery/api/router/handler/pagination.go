package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pageParam reads the zero-based ?page= query parameter. Missing or unparsable values mean the first page.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 0 {
		return 0
	}

	return page
}
