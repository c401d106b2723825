package main

import "github.com/valyala/fasthttp"

const contentTypeText = "text/plain; charset=utf-8"

// greetingHandler serves the greeting on GET / and leaves every other
// method/path to fasthttp's default 404. The path is matched as sent:
// "//", "/./" and "/a/.." are not "/".
func greetingHandler(greeting string) fasthttp.RequestHandler {
	body := []byte(greeting)
	return func(ctx *fasthttp.RequestCtx) {
		if !ctx.IsGet() || string(ctx.URI().PathOriginal()) != "/" {
			ctx.NotFound()
			return
		}
		ctx.SetContentType(contentTypeText)
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBody(body)
	}
}
