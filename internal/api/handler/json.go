package handler

import jsoniter "github.com/json-iterator/go"

// json substitui o encoding/json nos handlers mantendo a mesma API
var json = jsoniter.ConfigCompatibleWithStandardLibrary
