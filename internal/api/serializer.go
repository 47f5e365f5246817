package api

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

// sonicSerializer swaps echo's encoding/json serializer for sonic.
type sonicSerializer struct{}

func (s sonicSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := sonic.ConfigDefault.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s sonicSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := sonic.ConfigDefault.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
