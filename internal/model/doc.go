package model

// Package model defines the domain data structures of the application: the
// power-triangle result of a single computation and the history snapshot that
// wraps it. Structures are designed for direct display in the UI; all values
// are plain floats in engineering units (kW, kVA, kVAr, radians).
