package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/okorolenko/storefront/internal/cart"
	"github.com/okorolenko/storefront/internal/jwtmiddleware"
	"github.com/okorolenko/storefront/internal/order"
	"github.com/okorolenko/storefront/internal/repo"
	"github.com/okorolenko/storefront/internal/resolver"
	"github.com/okorolenko/storefront/internal/wishlist"
)

type Deps struct {
	Resolver *resolver.Resolver
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Orders   *order.Assembler // nil when no persistence service is configured
	Repo     *repo.GormRepo   // nil when no persistence service is configured

	JWTSecret   []byte
	PreferLocal bool
}

func Register(e *echo.Echo, d *Deps) {
	products := &ProductHTTP{Resolver: d.Resolver, PreferLocal: d.PreferLocal}
	carts := &CartHTTP{Cart: d.Cart, Resolver: d.Resolver, PreferLocal: d.PreferLocal}
	wishes := &WishlistHTTP{Wishlist: d.Wishlist}
	checkout := &CheckoutHTTP{Orders: d.Orders, Repo: d.Repo}
	reviews := &ReviewHTTP{Repo: d.Repo}

	api := e.Group("/api")

	api.GET("/products", products.List)
	api.GET("/products/featured", products.Featured)
	api.GET("/products/:id", products.Get)
	api.GET("/products/:id/reviews", reviews.List)

	api.GET("/cart", carts.Get)
	api.POST("/cart/items", carts.AddItem)
	api.PATCH("/cart/items/:product_id", carts.UpdateQuantity)
	api.DELETE("/cart/items/:product_id", carts.RemoveItem)
	api.DELETE("/cart", carts.Clear)

	api.GET("/wishlist", wishes.List)
	api.GET("/wishlist/:product_id", wishes.Contains)
	api.POST("/wishlist", wishes.Add)
	api.DELETE("/wishlist/:product_id", wishes.Remove)
	api.DELETE("/wishlist", wishes.Clear)

	authed := api.Group("", jwtmiddleware.RequireUser(d.JWTSecret))
	authed.POST("/checkout", checkout.PlaceOrder)
	authed.GET("/orders", checkout.ListOrders)
	authed.POST("/products/:id/reviews", reviews.Create)
}
