package http

import (
	"sync"

	"github.com/swaggo/swag"
)

type apiDoc struct{}

func (apiDoc) ReadDoc() string {
	return string(openAPIDocument)
}

var registerDoc sync.Once

// registerSwagger publishes the embedded document to swag so echo-swagger can
// serve it as doc.json.
func registerSwagger() {
	registerDoc.Do(func() {
		swag.Register(swag.Name, apiDoc{})
	})
}
