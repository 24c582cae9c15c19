package contacts

// Schema is the JSON Schema of the contacts document, checked on load.
const Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "contacts",
  "type": "object",
  "required": ["version", "records"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "records": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "phones": {"type": "array", "items": {"type": "string"}},
          "birthday": {"type": "string"},
          "email": {"type": "string"},
          "address": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`
