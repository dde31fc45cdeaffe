// Copyright (C) 2025 Allen Li
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

// Package xivapi provides Go bindings for XIVAPI, a web service
// serving readable FINAL FANTASY XIV game data.
//
// Game data is organized into sheets of rows, read with
// Client.Sheets, Client.SheetRows, and Client.SheetRow, and queried
// with Client.Search.  Game assets like icons and maps are read with
// Client.Asset and Client.MapAsset.
//
// Read the XIVAPI documentation for up to date information,
// especially about request limits.
// The client rate limits requests by default; see UseLimiter.
//
// Documentation for the API can be found at
// https://v2.xivapi.com/docs.
package xivapi
