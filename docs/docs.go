// Package docs holds the Swagger 2.0 document served under /swagger.
// It is kept in step with the handler annotations by hand.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin/orders": {
            "get": {
                "tags": [
                    "admin-orders"
                ],
                "summary": "List orders",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    }
                },
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Order id, customer name or email",
                        "type": "string"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "Order status",
                        "type": "string"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset for pagination",
                        "type": "integer"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Limit for pagination",
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/orders/{id}": {
            "get": {
                "tags": [
                    "admin-orders"
                ],
                "summary": "Get order by ID",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Order ID",
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/orders/{id}/status": {
            "put": {
                "tags": [
                    "admin-orders"
                ],
                "summary": "Update order status",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "404": {
                        "description": "Not found"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Order ID",
                        "type": "string"
                    },
                    {
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "description": "New status",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/users": {
            "get": {
                "tags": [
                    "admin-users"
                ],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid query"
                    }
                },
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Name or email",
                        "type": "string"
                    },
                    {
                        "name": "role",
                        "in": "query",
                        "required": false,
                        "description": "Role (user|admin)",
                        "type": "string"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset for pagination",
                        "type": "integer"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Limit for pagination",
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/users/{id}": {
            "get": {
                "tags": [
                    "admin-users"
                ],
                "summary": "Get user by ID",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "User ID",
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/users/{id}/role": {
            "put": {
                "tags": [
                    "admin-users"
                ],
                "summary": "Update user role",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "404": {
                        "description": "Not found"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "User ID",
                        "type": "string"
                    },
                    {
                        "name": "role",
                        "in": "body",
                        "required": true,
                        "description": "New role",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/users/{id}/impersonate": {
            "post": {
                "tags": [
                    "admin-users"
                ],
                "summary": "Issue a token acting as another user",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "User ID",
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/deals": {
            "get": {
                "tags": [
                    "admin-deals"
                ],
                "summary": "List all deals, active or not",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "admin-deals"
                ],
                "summary": "Create a deal",
                "responses": {
                    "201": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "409": {
                        "description": "Duplicated code"
                    }
                },
                "parameters": [
                    {
                        "name": "deal",
                        "in": "body",
                        "required": true,
                        "description": "Deal",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/deals/{id}": {
            "get": {
                "tags": [
                    "admin-deals"
                ],
                "summary": "Get deal by ID",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Deal ID",
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "admin-deals"
                ],
                "summary": "Update a deal",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "404": {
                        "description": "Not found"
                    },
                    "409": {
                        "description": "Duplicated code"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Deal ID",
                        "type": "string"
                    },
                    {
                        "name": "deal",
                        "in": "body",
                        "required": true,
                        "description": "Deal",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "admin-deals"
                ],
                "summary": "Delete a deal",
                "responses": {
                    "204": {
                        "description": "Deleted successfully"
                    },
                    "404": {
                        "description": "Not found"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Deal ID",
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/bans": {
            "get": {
                "tags": [
                    "admin"
                ],
                "summary": "Recent rate-limit bans, newest first",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal error"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Sign in and return a JWT token",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid input"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    },
                    {
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "description": "email and password",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/login/google": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Sign in with a simulated Google account",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    }
                ]
            }
        },
        "/register": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Register a new shopper and return a JWT token",
                "responses": {
                    "201": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "409": {
                        "description": "User exists"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    },
                    {
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "description": "Registration form",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/logout": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Sign out",
                "responses": {
                    "204": {
                        "description": "Signed out"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    }
                ]
            }
        },
        "/me": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "The signed-in user of this session",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Not signed in"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "tags": [
                    "account"
                ],
                "summary": "Update name and email of the signed-in user",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Validation errors"
                    },
                    "401": {
                        "description": "Not signed in"
                    },
                    "409": {
                        "description": "Email in use"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    }
                ]
            }
        },
        "/me/orders": {
            "get": {
                "tags": [
                    "account"
                ],
                "summary": "Order history of the signed-in user",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid pagination"
                    },
                    "401": {
                        "description": "Not signed in"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    }
                ]
            }
        },
        "/me/password": {
            "post": {
                "tags": [
                    "account"
                ],
                "summary": "Change the password of the signed-in user",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Validation errors"
                    },
                    "401": {
                        "description": "Not signed in"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    }
                ]
            }
        },
        "/password/forgot": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Request password reset instructions",
                "responses": {
                    "202": {
                        "description": "Accepted"
                    },
                    "400": {
                        "description": "Invalid email"
                    },
                    "503": {
                        "description": "Unavailable"
                    }
                }
            }
        },
        "/cart": {
            "get": {
                "tags": [
                    "cart"
                ],
                "summary": "Show the cart",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    }
                ]
            },
            "delete": {
                "tags": [
                    "cart"
                ],
                "summary": "Empty the cart",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    }
                ]
            }
        },
        "/cart/items": {
            "post": {
                "tags": [
                    "cart"
                ],
                "summary": "Add one unit of a product to the cart",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid input"
                    },
                    "404": {
                        "description": "Not found"
                    },
                    "409": {
                        "description": "Out of stock"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    },
                    {
                        "name": "item",
                        "in": "body",
                        "required": true,
                        "description": "Product to add",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/cart/items/{id}": {
            "put": {
                "tags": [
                    "cart"
                ],
                "summary": "Set the quantity of a cart line",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid input"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Product ID",
                        "type": "string"
                    },
                    {
                        "name": "quantity",
                        "in": "body",
                        "required": true,
                        "description": "New quantity",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "cart"
                ],
                "summary": "Remove a cart line",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Product ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/products": {
            "get": {
                "tags": [
                    "catalog"
                ],
                "summary": "Browse the catalog",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Case-insensitive name search",
                        "type": "string"
                    },
                    {
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "description": "Category name or slug",
                        "type": "string"
                    },
                    {
                        "name": "minPrice",
                        "in": "query",
                        "required": false,
                        "description": "Minimum price",
                        "type": "number"
                    },
                    {
                        "name": "maxPrice",
                        "in": "query",
                        "required": false,
                        "description": "Maximum price",
                        "type": "number"
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "required": false,
                        "description": "featured | price-low | price-high | name",
                        "type": "string"
                    }
                ]
            }
        },
        "/products/{id}": {
            "get": {
                "tags": [
                    "catalog"
                ],
                "summary": "Get a catalog product",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Product ID",
                        "type": "string"
                    },
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    }
                ]
            }
        },
        "/products/featured": {
            "get": {
                "tags": [
                    "catalog"
                ],
                "summary": "Featured products for the home page",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/categories": {
            "get": {
                "tags": [
                    "catalog"
                ],
                "summary": "List categories with their slugs",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/deals": {
            "get": {
                "tags": [
                    "catalog"
                ],
                "summary": "List active deals",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal error"
                    }
                }
            }
        },
        "/new-arrivals": {
            "get": {
                "tags": [
                    "catalog"
                ],
                "summary": "List visible new arrivals grouped by category",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal error"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    }
                ]
            }
        },
        "/admin/new-arrivals": {
            "get": {
                "tags": [
                    "admin-new-arrivals"
                ],
                "summary": "List new arrivals, hidden ones included",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "admin-new-arrivals"
                ],
                "summary": "Add a new arrival",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Validation errors"
                    }
                }
            }
        },
        "/admin/new-arrivals/{id}": {
            "get": {
                "tags": [
                    "admin-new-arrivals"
                ],
                "summary": "Get new arrival by ID",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "New arrival ID",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "tags": [
                    "admin-new-arrivals"
                ],
                "summary": "Update a new arrival",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Validation errors"
                    },
                    "404": {
                        "description": "Not found"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "New arrival ID",
                        "type": "string"
                    }
                ]
            },
            "delete": {
                "tags": [
                    "admin-new-arrivals"
                ],
                "summary": "Delete a new arrival",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted successfully"
                    },
                    "404": {
                        "description": "Not found"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "New arrival ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/coupons/validate": {
            "post": {
                "tags": [
                    "catalog"
                ],
                "summary": "Check a coupon code",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Empty code"
                    },
                    "404": {
                        "description": "Invalid code"
                    }
                },
                "parameters": [
                    {
                        "name": "coupon",
                        "in": "body",
                        "required": true,
                        "description": "Coupon code",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/admin/products/import": {
            "post": {
                "tags": [
                    "admin-products"
                ],
                "summary": "Import products via CSV",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid file"
                    },
                    "500": {
                        "description": "Internal error"
                    }
                },
                "parameters": [
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "CSV file",
                        "type": "file"
                    },
                    {
                        "name": "mode",
                        "in": "query",
                        "required": false,
                        "description": "Import mode (skip|update)",
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/metrics/dashboard": {
            "get": {
                "tags": [
                    "metrics"
                ],
                "summary": "Dashboard metrics for admin view",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal error"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/metrics/analytics": {
            "get": {
                "tags": [
                    "metrics"
                ],
                "summary": "Sales analytics",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid query"
                    },
                    "500": {
                        "description": "Internal error"
                    }
                },
                "parameters": [
                    {
                        "name": "top",
                        "in": "query",
                        "required": false,
                        "description": "Number of top products (default 5)",
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/checkout": {
            "post": {
                "tags": [
                    "orders"
                ],
                "summary": "Place the cart as an order",
                "responses": {
                    "201": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "503": {
                        "description": "Order service unavailable"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    },
                    {
                        "name": "checkout",
                        "in": "body",
                        "required": true,
                        "description": "Shipping and payment details",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/orders/{id}/tracking": {
            "get": {
                "tags": [
                    "orders"
                ],
                "summary": "Track an order",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found"
                    },
                    "503": {
                        "description": "Order service unavailable"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Order ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/admin/products": {
            "post": {
                "tags": [
                    "admin-products"
                ],
                "summary": "Create a new product",
                "responses": {
                    "201": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "409": {
                        "description": "Duplicated name"
                    }
                },
                "parameters": [
                    {
                        "name": "product",
                        "in": "body",
                        "required": true,
                        "description": "Product to add",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "tags": [
                    "admin-products"
                ],
                "summary": "Filter and paginate back-office products",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid query"
                    },
                    "500": {
                        "description": "Internal error"
                    }
                },
                "parameters": [
                    {
                        "name": "name",
                        "in": "query",
                        "required": false,
                        "description": "Filter by name",
                        "type": "string"
                    },
                    {
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "description": "Filter by category name or slug",
                        "type": "string"
                    },
                    {
                        "name": "minPrice",
                        "in": "query",
                        "required": false,
                        "description": "Minimum price",
                        "type": "number"
                    },
                    {
                        "name": "maxPrice",
                        "in": "query",
                        "required": false,
                        "description": "Maximum price",
                        "type": "number"
                    },
                    {
                        "name": "minStock",
                        "in": "query",
                        "required": false,
                        "description": "Minimum stock",
                        "type": "integer"
                    },
                    {
                        "name": "maxStock",
                        "in": "query",
                        "required": false,
                        "description": "Maximum stock",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset for pagination",
                        "type": "integer"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Limit for pagination",
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/products/{id}": {
            "get": {
                "tags": [
                    "admin-products"
                ],
                "summary": "Get product by ID",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found"
                    },
                    "500": {
                        "description": "Internal error"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Product ID",
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "admin-products"
                ],
                "summary": "Delete a product",
                "responses": {
                    "204": {
                        "description": "Deleted successfully"
                    },
                    "404": {
                        "description": "Not found"
                    },
                    "500": {
                        "description": "Internal error"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Product ID",
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "admin-products"
                ],
                "summary": "Update a product",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "404": {
                        "description": "Not found"
                    },
                    "409": {
                        "description": "Duplicated name"
                    },
                    "500": {
                        "description": "Internal error"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Product ID",
                        "type": "string"
                    },
                    {
                        "name": "product",
                        "in": "body",
                        "required": true,
                        "description": "Updated product",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/products/{id}/stock": {
            "post": {
                "tags": [
                    "admin-products"
                ],
                "summary": "Adjust product stock",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid change"
                    },
                    "404": {
                        "description": "Not found"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Product ID",
                        "type": "string"
                    },
                    {
                        "name": "adjustment",
                        "in": "body",
                        "required": true,
                        "description": "Stock delta",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/wishlist": {
            "get": {
                "tags": [
                    "wishlist"
                ],
                "summary": "Show the wishlist",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    }
                ]
            },
            "delete": {
                "tags": [
                    "wishlist"
                ],
                "summary": "Empty the wishlist",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    }
                ]
            }
        },
        "/wishlist/items": {
            "post": {
                "tags": [
                    "wishlist"
                ],
                "summary": "Save a product to the wishlist",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid input"
                    },
                    "404": {
                        "description": "Not found"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    },
                    {
                        "name": "item",
                        "in": "body",
                        "required": true,
                        "description": "Product to save",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/wishlist/items/{id}": {
            "get": {
                "tags": [
                    "wishlist"
                ],
                "summary": "Check whether a product is in the wishlist",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Product ID",
                        "type": "string"
                    }
                ]
            },
            "delete": {
                "tags": [
                    "wishlist"
                ],
                "summary": "Remove a product from the wishlist",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Product ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/wishlist/items/{id}/cart": {
            "post": {
                "tags": [
                    "wishlist"
                ],
                "summary": "Add a saved product to the cart",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not in wishlist"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Product ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/wishlist/move-to-cart": {
            "post": {
                "tags": [
                    "wishlist"
                ],
                "summary": "Move every wishlist item to the cart",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "required": false,
                        "description": "Visitor session",
                        "type": "string"
                    }
                ]
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Storefront API",
	Description:      "REST API for the eco storefront: catalog, session cart and wishlist, checkout, tracking and the admin back office.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
