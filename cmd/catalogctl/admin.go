// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/ycinema/internal/platform/sec"
	"github.com/taibuivan/ycinema/internal/users/auth"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Provision console accounts",
}

var (
	adminEmail       string
	adminPassword    string
	adminDisplayName string
	adminRole        string
)

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a console account",
	Long: `Creates a console account with a bcrypt-hashed password.

Roles:
  viewer - read-only console access (default)
  editor - content create, edit and delete
  admin  - everything, including homepage settings and import`,
	Args: cobra.NoArgs,
	RunE: runAdminCreate,
}

func init() {
	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "account email (required)")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "initial password (required)")
	adminCreateCmd.Flags().StringVar(&adminDisplayName, "name", "", "display name")
	adminCreateCmd.Flags().StringVar(&adminRole, "role", string(sec.RoleViewer), "viewer, editor or admin")
	_ = adminCreateCmd.MarkFlagRequired("email")
	_ = adminCreateCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(adminCreateCmd)
}

func runAdminCreate(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	pool, err := openPool(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Sessions and tokens are not needed to provision an account.
	service := auth.NewService(auth.NewUserRepository(pool), nil, nil, logger)

	user, err := service.CreateAccount(cmd.Context(), auth.CreateAccountInput{
		Email:       adminEmail,
		Password:    adminPassword,
		DisplayName: adminDisplayName,
		Role:        sec.UserRole(adminRole),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s account %s (%s)\n", user.Role, user.Email, user.ID)
	return nil
}
