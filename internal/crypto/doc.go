// Package crypto holds the password hashing used by cashbox.
//
// Contents
//
//   - Hasher: salted PBKDF2-HMAC-SHA-256 with 65536 iterations and a 256-bit
//     key (GenerateSalt, Hash, Verify)
//   - Standard base64 helper for salts and hashes (B64)
//   - Best-effort memory wiping for password buffers and derived keys (Wipe)
//
// # Notes
//
// Verify compares encoded hashes with a short-circuit-free loop and treats
// every derivation failure as a mismatch, so a caller cannot tell a corrupt
// record apart from a wrong password. Salt generation failures are returned;
// there is no fallback random source.
package crypto
