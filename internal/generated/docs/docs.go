// Package docs registers the API document with swag so echo-swagger can serve it.
package docs

import (
	"github.com/swaggo/swag"

	"drones/internal/generated/servers"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Drone Fleet API",
	Description:      "Registers drones, loads medication items onto them and reports fleet state.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(servers.OpenAPISpec),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
