// SPDX-License-Identifier: Unlicense OR MIT

package bind

import "testing"

func TestExtensionSupported(t *testing.T) {
	const list = "EGL_KHR_image EGL_KHR_image_base  EGL_KHR_fence_sync\nEGL_ANDROID_blob_cache"
	tests := []struct {
		name string
		want bool
	}{
		{"EGL_KHR_image", true},
		{"EGL_KHR_image_base", true},
		{"EGL_KHR_fence_sync", true},
		{"EGL_ANDROID_blob_cache", true},
		{"EGL_KHR_imag", false},
		{"KHR_image", false},
		{"EGL_KHR_image_base_x", false},
		{"EGL_KHR_image EGL_KHR_image_base", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ExtensionSupported(list, tt.name); got != tt.want {
			t.Errorf("ExtensionSupported(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	if ExtensionSupported("", "EGL_KHR_image") {
		t.Error("empty list supports an extension")
	}
}
