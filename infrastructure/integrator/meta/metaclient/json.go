package metaclient

import jsoniter "github.com/json-iterator/go"

// As respostas da Graph API podem ser grandes (listagens com centenas de
// conjuntos); jsoniter mantém a API de encoding/json com decode mais barato
var json = jsoniter.ConfigCompatibleWithStandardLibrary
