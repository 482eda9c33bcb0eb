package main

// @title Packing Checklist Service API
// @version 1.0
// @description Checklist lifecycle, item state and review favorites with consistent concurrent updates

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Checklists
// @tag.description Checklist lifecycle and item editing

// @tag.name Sharing
// @tag.description Sharing checklists and browsing shared ones

// @tag.name Favorites
// @tag.description Review favorites and like counters
