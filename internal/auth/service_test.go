package auth

import "testing"

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", password, RoleVendor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	_, err := service.Register("Test User", "short@example.com", "short", RoleVendor)
	if err == nil {
		t.Fatal("expected error for short password")
	}
}

func TestRegisterDefaultsToConsumerRole(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	user, err := service.Register("Test User", "consumer@example.com", "Password@123", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Role != RoleConsumer {
		t.Fatalf("expected role %s, got %s", RoleConsumer, user.Role)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	_, err := service.Register("Test User", "weird@example.com", "Password@123", "SUPERUSER")
	if err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestLoginWithWrongPassword(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	_, err := service.Register("Test User", "login@example.com", "Password@123", RoleVendor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = service.Login("login@example.com", "WrongPassword")
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
