package integration

import (
	"testing"
)

// TestLogin verifies the demo credential login flow.
func TestLogin(t *testing.T) {
	skipIfNotRunning(t)

	status, data := httpPost(t, baseURL()+"/api/v1/auth/login", map[string]interface{}{
		"email":    "admin@candebrilla.com",
		"password": "Admin@123",
	})
	requireStatus(t, status, 200)

	if token := extractString(t, data, "data.token"); token == "" {
		t.Fatal("expected non-empty session token")
	}
}

// TestLoginRejectsBadCredentials verifies the 401 shape for wrong credentials.
func TestLoginRejectsBadCredentials(t *testing.T) {
	skipIfNotRunning(t)

	status, data := httpPost(t, baseURL()+"/api/v1/auth/login", map[string]interface{}{
		"email":    "admin@candebrilla.com",
		"password": "wrong-password",
	})
	if status != 401 {
		t.Fatalf("expected status 401, got %d; body: %v", status, data)
	}
	if code := extractString(t, data, "error.code"); code != "UNAUTHORIZED" {
		t.Fatalf("expected UNAUTHORIZED error code, got %s", code)
	}
}

// TestAdminRoutesRequireToken verifies that write operations reject
// unauthenticated requests.
func TestAdminRoutesRequireToken(t *testing.T) {
	skipIfNotRunning(t)

	body := map[string]interface{}{
		"name":     uniqueName("Unauthorized Piece"),
		"price":    100,
		"category": "Earrings",
	}
	status, data := httpPost(t, baseURL()+"/api/v1/products", body)
	if status != 401 {
		t.Fatalf("expected status 401 without token, got %d; body: %v", status, data)
	}
}

// TestCreateProductValidation verifies that creating a product with missing
// required fields returns a 400 error.
func TestCreateProductValidation(t *testing.T) {
	skipIfNotRunning(t)

	token := adminToken(t)

	// Missing name and category.
	status, data := httpPostWithAuth(t, baseURL()+"/api/v1/products", map[string]interface{}{
		"price": 100,
	}, token)
	if status != 400 {
		t.Fatalf("expected status 400 for invalid product, got %d; body: %v", status, data)
	}
}

// TestUpdateProduct verifies the partial update flow.
func TestUpdateProduct(t *testing.T) {
	skipIfNotRunning(t)

	token := adminToken(t)
	productID := createTestProduct(t, "Cuffs & Bracelets", 799)

	status, data := httpPutWithAuth(t, baseURL()+"/api/v1/products/"+productID, map[string]interface{}{
		"price": 649,
	}, token)
	requireStatus(t, status, 200)

	if price := extractFloat(t, data, "data.price"); price != 649 {
		t.Fatalf("expected updated price 649, got %v", price)
	}

	// The untouched fields survive the patch.
	if category := extractString(t, data, "data.category"); category != "Cuffs & Bracelets" {
		t.Fatalf("expected category preserved, got %s", category)
	}
}

// TestDeleteProduct verifies delete and the subsequent 404.
func TestDeleteProduct(t *testing.T) {
	skipIfNotRunning(t)

	token := adminToken(t)
	productID := createTestProduct(t, "Belt", 599)

	status, data := httpDeleteWithAuth(t, baseURL()+"/api/v1/products/"+productID, token)
	requireStatus(t, status, 200)
	if got := extractString(t, data, "data.status"); got != "deleted" {
		t.Fatalf("expected deleted status, got %s", got)
	}

	getStatus, _ := httpGet(t, baseURL()+"/api/v1/products/"+productID)
	if getStatus != 404 {
		t.Fatalf("expected 404 after delete, got %d", getStatus)
	}
}
