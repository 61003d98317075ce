package api

import (
	"time"

	"github.com/go-resty/resty/v2"
)

var client = resty.New().
	SetTimeout(15*time.Second).
	SetHeader("User-Agent", "magma-launcher")
