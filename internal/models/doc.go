// Package models defines the core domain models for money-matters.
//
// # Entities
//
//   - User: a registered account, identified by a unique email
//   - Group: a named set of users who share expenses (membership is append-only)
//   - Expense: money one member paid on behalf of the group
//   - ExpenseSplit: the portion of an expense attributed to one member
//   - RefreshToken: a stored one-way hash of an issued refresh token
//
// # Conventions
//
//  1. Relationships are ID strings, not pointers.
//  2. Money is a decimal.Decimal with two decimal places; storage keeps it as integer cents.
//  3. Expenses and splits are immutable once written.
//  4. A RefreshToken is either present and unexpired (active) or absent (revoked).
package models
