// Package gonumvif connects vifprune to gonum.
//
// Provider is a vif.Provider that solves each regression with gonum's SVD
// instead of the built-in QR solver; FromMat and ToMat convert between
// mat.Matrix and frame.Table; Transformer wraps eliminate.Eliminate behind a
// Fit/Transform interface for mat.Matrix pipelines.
package gonumvif
