// Copyright 2025 Dachico Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package translate

import "context"

// Provider translates a clause title into Chinese.
// Implementations must be thread-safe for concurrent use.
type Provider interface {
	// TranslateText translates text to Chinese. Returns an error when the
	// translation service is unreachable or produces no usable output.
	TranslateText(ctx context.Context, text string) (string, error)

	// Close releases resources held by the provider.
	Close() error
}
